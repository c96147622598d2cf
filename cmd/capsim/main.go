// Package main provides the capsim CLI tool for simulating and comparing
// cache replacement algorithms on deterministic workloads.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
