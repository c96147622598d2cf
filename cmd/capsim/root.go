package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	capacity int
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "capsim",
	Short: "Simulate and compare cache replacement algorithms",
	Long: `Capsim replays page-request workloads through six cache replacement
algorithms (FIFO, LRU, LFU, ARC, 2Q and the clairvoyant OPT baseline)
and reports per-algorithm hit rates.

Examples:
  # Run one workload and print its report
  capsim run WL01_STATIC_FREQ

  # Run the full suite with a summary table
  capsim run --summary

  # List the available workloads
  capsim workloads

  # Generate trace files for offline replay
  capsim generate --output ./traces --compression zstd

  # Replay a trace file through selected algorithms
  capsim replay traces/WL03_STATIC_SW.trace.zst --algorithms LRU,ARC`,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&capacity, "capacity", "c", 32, "cache capacity in pages")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger builds the CLI logger: a development logger when --verbose is
// set, otherwise silent.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}
