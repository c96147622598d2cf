// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the simulator.
const (
	// Simulator metrics.
	MetricAccesses = "capsim_accesses_total"
	MetricHits     = "capsim_hits_total"
	MetricMisses   = "capsim_misses_total"
	MetricOverhead = "capsim_access_seconds"

	// Suite runner metrics.
	MetricWorkloadRuns = "capsim_workload_runs_total"
	MetricTuningRuns   = "capsim_tuning_runs_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
