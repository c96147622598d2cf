package reporting

import (
	"fmt"
	"io"
	"strings"
	"time"

	capsim "github.com/YouXiangyu/cache-algorithm-simulator"
	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/analysis"
	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/suite"
)

// MarkdownReport generates benchmark reports in Markdown format.
type MarkdownReport struct {
	w io.Writer
}

// NewMarkdownReport creates a new Markdown report writer.
func NewMarkdownReport(w io.Writer) *MarkdownReport {
	return &MarkdownReport{w: w}
}

// WriteHeader writes the report header.
func (r *MarkdownReport) WriteHeader(title string) {
	fmt.Fprintf(r.w, "# %s\n\n", title)
	fmt.Fprintf(r.w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
}

// WriteMethodology writes the methodology section.
func (r *MarkdownReport) WriteMethodology(cacheSize, workloads, requestsPerWorkload int) {
	fmt.Fprintln(r.w, "## Methodology")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **Cache size:** %d pages\n", cacheSize)
	fmt.Fprintf(r.w, "- **Workloads:** %d\n", workloads)
	fmt.Fprintf(r.w, "- **Requests per workload:** %d\n", requestsPerWorkload)
	fmt.Fprintln(r.w, "- **Metric:** Hit rate percentage (higher is better); OPT is the clairvoyant upper bound")
	fmt.Fprintln(r.w, "- **Statistical tests:** Mann-Whitney U (non-parametric), Cohen's d effect size")
	fmt.Fprintln(r.w)
}

// WriteSummaryTable writes the per-workload hit-rate table.
func (r *MarkdownReport) WriteSummaryTable(summary *suite.Summary, algorithms []capsim.Algorithm) {
	fmt.Fprintln(r.w, "## Hit Rates")
	fmt.Fprintln(r.w)

	fmt.Fprint(r.w, "| Workload |")
	for _, algo := range algorithms {
		fmt.Fprintf(r.w, " %s |", algo)
	}
	fmt.Fprintln(r.w)

	fmt.Fprint(r.w, "|----------|")
	for _, algo := range algorithms {
		fmt.Fprint(r.w, strings.Repeat("-", len(string(algo))+2)+"|")
	}
	fmt.Fprintln(r.w)

	for _, wr := range summary.Workloads {
		fmt.Fprintf(r.w, "| %s |", wr.Recipe.Key)
		for _, algo := range algorithms {
			if res, ok := wr.Result(algo); ok {
				fmt.Fprintf(r.w, " %.2f%% |", res.HitRate())
			} else {
				fmt.Fprint(r.w, " - |")
			}
		}
		fmt.Fprintln(r.w)
	}
	fmt.Fprintln(r.w)
}

// WriteTuning writes the per-workload 2Q tuning outcomes.
func (r *MarkdownReport) WriteTuning(summary *suite.Summary) {
	fmt.Fprintln(r.w, "## 2Q Offline Tuning")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "| Workload | A1in | A1out | Tuned Hit Rate |")
	fmt.Fprintln(r.w, "|----------|------|-------|----------------|")
	for _, wr := range summary.Workloads {
		fmt.Fprintf(r.w, "| %s | %d | %d | %.2f%% |\n",
			wr.Recipe.Key, wr.Tuning.SizeIn, wr.Tuning.SizeOut, wr.Tuning.HitRate)
	}
	fmt.Fprintln(r.w)
}

// WriteComparison writes a detailed comparison section.
func (r *MarkdownReport) WriteComparison(comp *analysis.AlgorithmComparison) {
	fmt.Fprintf(r.w, "## %s vs %s\n\n", comp.Algorithm1, comp.Algorithm2)

	fmt.Fprintln(r.w, "### Descriptive Statistics")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "| Metric | "+comp.Algorithm1+" | "+comp.Algorithm2+" |")
	fmt.Fprintln(r.w, "|--------|"+strings.Repeat("-", len(comp.Algorithm1)+2)+"|"+strings.Repeat("-", len(comp.Algorithm2)+2)+"|")
	fmt.Fprintf(r.w, "| Mean | %.2f%% | %.2f%% |\n", comp.Stats1.Mean, comp.Stats2.Mean)
	fmt.Fprintf(r.w, "| Median | %.2f%% | %.2f%% |\n", comp.Stats1.Median, comp.Stats2.Median)
	fmt.Fprintf(r.w, "| Std Dev | %.2f | %.2f |\n", comp.Stats1.StdDev, comp.Stats2.StdDev)
	fmt.Fprintf(r.w, "| Min | %.2f%% | %.2f%% |\n", comp.Stats1.Min, comp.Stats2.Min)
	fmt.Fprintf(r.w, "| Max | %.2f%% | %.2f%% |\n", comp.Stats1.Max, comp.Stats2.Max)
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w, "### Statistical Analysis")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **Mann-Whitney U:** %.2f (z=%.2f, p=%.4f)\n",
		comp.MannWhitney.U, comp.MannWhitney.Z, comp.MannWhitney.PValue)
	fmt.Fprintf(r.w, "- **Effect size (Cohen's d):** %.2f (%s)\n",
		comp.EffectSize.CohensD, comp.EffectSize.Interpretation)
	fmt.Fprintf(r.w, "- **%.0f%% CI for mean difference:** [%.2f, %.2f]\n",
		comp.BootstrapCI.Confidence*100, comp.BootstrapCI.LowerBound, comp.BootstrapCI.UpperBound)
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w, "### Conclusion")
	fmt.Fprintln(r.w)
	if comp.WinnerConfident {
		fmt.Fprintf(r.w, "**%s** shows a statistically significant hit-rate advantage over %s ",
			comp.Winner, otherAlgorithm(comp.Winner, comp.Algorithm1, comp.Algorithm2))
		fmt.Fprintf(r.w, "(p < 0.05, effect size: %s).\n", comp.EffectSize.Interpretation)
	} else {
		fmt.Fprintln(r.w, "No statistically significant difference detected between algorithms (p >= 0.05).")
	}
	fmt.Fprintln(r.w)
}

func otherAlgorithm(winner, a1, a2 string) string {
	if winner == a1 {
		return a2
	}
	return a1
}

// WriteFooter writes the report footer.
func (r *MarkdownReport) WriteFooter() {
	fmt.Fprintln(r.w, "---")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "*Report generated by capsim*")
}
