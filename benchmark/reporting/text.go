// Package reporting renders simulation results as plain-text and Markdown
// reports.
package reporting

import (
	"fmt"
	"io"
	"sort"
	"strings"

	capsim "github.com/YouXiangyu/cache-algorithm-simulator"
	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/suite"
)

// ReportConfig describes the simulation setup a text report is for.
type ReportConfig struct {
	CacheSize     int
	WorkloadName  string
	TotalRequests int
}

// TextReport renders per-algorithm sections and ranking tables for one
// workload.
type TextReport struct {
	config ReportConfig
}

// NewTextReport creates a text report builder for the given configuration.
func NewTextReport(config ReportConfig) *TextReport {
	return &TextReport{config: config}
}

// Write renders the full report to w.
func (r *TextReport) Write(w io.Writer, results []*capsim.SimulationResult) error {
	var b strings.Builder

	b.WriteString("[Simulation Configuration]\n")
	fmt.Fprintf(&b, "- Cache Size: %d pages\n", r.config.CacheSize)
	fmt.Fprintf(&b, "- Workload: %s\n", r.config.WorkloadName)
	fmt.Fprintf(&b, "- Total Requests: %d\n", r.config.TotalRequests)
	b.WriteString("\n")

	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[Algorithm: %s]\n", res.Algorithm)
		fmt.Fprintf(&b, "- Hit Rate: %.2f%%\n", res.HitRate())
		fmt.Fprintf(&b, "- Avg. Time per Request: %.2f ns\n", float64(res.AvgOverhead().Nanoseconds()))
	}

	b.WriteString("\n[Summary]\n")
	b.WriteString("Analysis complete. See algorithm sections and ranking tables above.\n")
	b.WriteString(r.rankings(results))

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextReport) rankings(results []*capsim.SimulationResult) string {
	if len(results) == 0 {
		return ""
	}

	byHitRate := make([]*capsim.SimulationResult, len(results))
	copy(byHitRate, results)
	sort.SliceStable(byHitRate, func(i, j int) bool {
		return byHitRate[i].HitRate() > byHitRate[j].HitRate()
	})
	hitRows := make([][]string, len(byHitRate))
	for i, res := range byHitRate {
		hitRows[i] = []string{fmt.Sprintf("%d", i+1), res.Algorithm, fmt.Sprintf("%.2f%%", res.HitRate())}
	}

	byTime := make([]*capsim.SimulationResult, len(results))
	copy(byTime, results)
	sort.SliceStable(byTime, func(i, j int) bool {
		return byTime[i].AvgOverhead() < byTime[j].AvgOverhead()
	})
	timeRows := make([][]string, len(byTime))
	for i, res := range byTime {
		timeRows[i] = []string{
			fmt.Sprintf("%d", i+1), res.Algorithm,
			fmt.Sprintf("%.2f ns", float64(res.AvgOverhead().Nanoseconds())),
		}
	}

	return strings.Join([]string{
		"",
		"[Hit-Rate Ranking]",
		buildTable([]string{"Rank", "Algorithm", "Hit Rate"}, hitRows),
		"",
		"[Runtime Ranking]",
		buildTable([]string{"Rank", "Algorithm", "Avg Time / Req"}, timeRows),
		"",
	}, "\n")
}

// buildTable renders an ASCII table with left-justified cells padded to the
// widest value per column.
func buildTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return "(No data)"
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return "| " + strings.Join(cells, " | ") + " |"
	}

	seps := make([]string, len(headers))
	for i := range headers {
		seps[i] = strings.Repeat("-", widths[i])
	}

	lines := []string{
		formatRow(headers),
		"|-" + strings.Join(seps, "-|-") + "-|",
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}

// ANSI escape sequences used to highlight the best online algorithm in the
// suite summary table.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiGreen = "\033[32m"
)

const (
	workloadColWidth = 28
	valueColWidth    = 8
)

// WriteSummaryTable renders the hit-rate summary for a full suite run: one
// row per workload, one column per algorithm, best non-OPT cell highlighted
// when color is enabled.
func WriteSummaryTable(w io.Writer, summary *suite.Summary, algorithms []capsim.Algorithm, color bool) error {
	var b strings.Builder

	headerCells := []string{fmt.Sprintf("%-*s", workloadColWidth, "Workload")}
	for _, algo := range algorithms {
		headerCells = append(headerCells, fmt.Sprintf("%*s", valueColWidth, string(algo)))
	}
	header := strings.Join(headerCells, " ")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")

	workloads := make([]*suite.WorkloadResult, len(summary.Workloads))
	copy(workloads, summary.Workloads)
	sort.Slice(workloads, func(i, j int) bool {
		return workloads[i].Recipe.Key < workloads[j].Recipe.Key
	})

	for _, wr := range workloads {
		var bestRate float64
		if best := wr.BestNonOPT(); best != nil {
			bestRate = best.HitRate()
		}

		cells := []string{fmt.Sprintf("%-*s", workloadColWidth, wr.Recipe.Key)}
		for _, algo := range algorithms {
			rate := 0.0
			if res, ok := wr.Result(algo); ok {
				rate = res.HitRate()
			}
			cell := fmt.Sprintf("%*.2f", valueColWidth, rate)
			if color && algo != capsim.OPT && rate == bestRate {
				cell = ansiBold + ansiGreen + cell + ansiReset
			}
			cells = append(cells, cell)
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
