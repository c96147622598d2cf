package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	capsim "github.com/YouXiangyu/cache-algorithm-simulator"
	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/reporting"
	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/suite"
)

var runCmd = &cobra.Command{
	Use:   "run [WORKLOAD...]",
	Short: "Run benchmark workloads through every algorithm",
	Long: `Run one or more suite workloads through every algorithm and print a
per-workload report. With no arguments, all workloads are run.

2Q is tuned offline before each workload: every A1in size from 1 to
min(16, capacity-1) is tried against the full trace and the best one
is used for the reported run.

Examples:
  # One workload, full text report
  capsim run WL01_STATIC_FREQ

  # All workloads with a hit-rate summary table
  capsim run --summary

  # All workloads, write a Markdown report
  capsim run --markdown report.md`,
	RunE: runRun,
}

var (
	showSummary  bool
	markdownPath string
)

func init() {
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "print a hit-rate summary table instead of per-workload reports")
	runCmd.Flags().StringVar(&markdownPath, "markdown", "", "write a Markdown report to the given file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	recipes, err := selectRecipes(args)
	if err != nil {
		return err
	}

	runner, err := suite.NewRunner(capacity, suite.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	summary := &suite.Summary{Capacity: capacity}
	for _, recipe := range recipes {
		if showSummary || markdownPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Running %s...\n", recipe.Key)
		}
		wr, err := runner.RunRecipe(cmd.Context(), recipe)
		if err != nil {
			return err
		}
		summary.Workloads = append(summary.Workloads, wr)

		if !showSummary {
			report := reporting.NewTextReport(reporting.ReportConfig{
				CacheSize:     capacity,
				WorkloadName:  recipe.Category,
				TotalRequests: wr.Results[0].TotalRequests,
			})
			if err := report.Write(cmd.OutOrStdout(), wr.Results); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[2Q offline tuning] A1in=%d, A1out=%d, HitRate=%.2f%%\n\n",
				wr.Tuning.SizeIn, wr.Tuning.SizeOut, wr.Tuning.HitRate)
		}
	}

	if showSummary {
		fmt.Fprintf(cmd.OutOrStdout(), "\nHit rate summary (%%), cache size %d pages\n\n", capacity)
		if err := reporting.WriteSummaryTable(cmd.OutOrStdout(), summary, capsim.Algorithms(), stdoutIsTTY()); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	if markdownPath != "" {
		if err := writeMarkdownReport(markdownPath, summary); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Markdown report written to %s\n", markdownPath)
	}
	return nil
}

// selectRecipes resolves workload keys to recipes, defaulting to all.
func selectRecipes(keys []string) ([]suite.Recipe, error) {
	if len(keys) == 0 {
		return suite.Recipes(), nil
	}
	recipes := make([]suite.Recipe, 0, len(keys))
	for _, key := range keys {
		recipe, ok := suite.RecipeByKey(key)
		if !ok {
			return nil, fmt.Errorf("unknown workload %q; run 'capsim workloads' to list them", key)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func writeMarkdownReport(path string, summary *suite.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	r := reporting.NewMarkdownReport(f)
	r.WriteHeader("Cache Algorithm Benchmark")
	r.WriteMethodology(summary.Capacity, len(summary.Workloads), suite.TargetRequests)
	r.WriteSummaryTable(summary, capsim.Algorithms())
	r.WriteTuning(summary)
	r.WriteFooter()

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	return nil
}

// stdoutIsTTY reports whether stdout is a terminal, gating ANSI color.
func stdoutIsTTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
