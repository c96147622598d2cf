package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	capsim "github.com/YouXiangyu/cache-algorithm-simulator"
	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/reporting"
	"github.com/YouXiangyu/cache-algorithm-simulator/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay TRACE_FILE",
	Short: "Replay a trace file through selected algorithms",
	Long: `Replay a newline-separated trace file through selected algorithms and
print the resulting report. Compressed traces are detected by file
extension (.zst, .gz).

Examples:
  capsim replay traces/WL03_STATIC_SW.trace
  capsim replay traces/WL03_STATIC_SW.trace.zst --algorithms LRU,ARC --capacity 64`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var algorithmNames string

func init() {
	replayCmd.Flags().StringVar(&algorithmNames, "algorithms", "", "comma-separated algorithms to replay (default all)")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	algorithms, err := parseAlgorithms(algorithmNames)
	if err != nil {
		return err
	}

	keys, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("trace %s is empty", args[0])
	}

	sim := capsim.NewSimulator(capacity, keys, capsim.WithLogger(logger))

	results := make([]*capsim.SimulationResult, 0, len(algorithms))
	for _, algo := range algorithms {
		var opts []capsim.PolicyOption
		if algo == capsim.OPT {
			opts = append(opts, capsim.WithFutureTrace(keys))
		}
		p, err := capsim.New(algo, capacity, opts...)
		if err != nil {
			return fmt.Errorf("constructing %s: %w", algo, err)
		}
		result, err := sim.Run(cmd.Context(), string(algo), p)
		if err != nil {
			return fmt.Errorf("running %s: %w", algo, err)
		}
		results = append(results, result)
	}

	report := reporting.NewTextReport(reporting.ReportConfig{
		CacheSize:     capacity,
		WorkloadName:  args[0],
		TotalRequests: len(keys),
	})
	return report.Write(cmd.OutOrStdout(), results)
}

func parseAlgorithms(names string) ([]capsim.Algorithm, error) {
	if names == "" {
		return capsim.Algorithms(), nil
	}
	var algorithms []capsim.Algorithm
	for _, name := range strings.Split(names, ",") {
		algo, err := capsim.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, algo)
	}
	return algorithms, nil
}
