package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YouXiangyu/cache-algorithm-simulator/benchmark/suite"
)

var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List the available benchmark workloads",
	RunE:  runWorkloads,
}

func init() {
	rootCmd.AddCommand(workloadsCmd)
}

func runWorkloads(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	recipes := suite.Recipes()

	fmt.Fprintf(out, "Available workloads (%d requests each, designed for %d pages):\n\n",
		suite.TargetRequests, suite.SuiteCapacity)

	for i, recipe := range recipes {
		fmt.Fprintf(out, "%d. %s [%s]\n", i+1, recipe.Key, recipe.Category)
		fmt.Fprintf(out, "   %s\n", recipe.Goal)
		if verbose {
			for _, step := range recipe.Script {
				fmt.Fprintf(out, "   - %s\n", step)
			}
		}
	}
	return nil
}
