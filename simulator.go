package capsim

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/YouXiangyu/cache-algorithm-simulator/internal/stats"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// SimulationResult is the immutable record of one simulation run.
type SimulationResult struct {
	Algorithm     string
	Capacity      int
	TotalRequests int
	Hits          int
	Misses        int
	Elapsed       time.Duration
	PolicyStats   map[string]int
}

// HitRate returns hits as a percentage of total requests,
// or 0 when no requests were replayed.
func (r *SimulationResult) HitRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.TotalRequests) * 100
}

// AvgOverhead returns the mean in-policy time per request. It measures
// algorithmic bookkeeping cost, not I/O; informational only.
func (r *SimulationResult) AvgOverhead() time.Duration {
	if r.TotalRequests == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.TotalRequests)
}

// Simulator replays a materialized trace against one policy instance at a
// time. The trace is held fully in memory, which is also what OPT requires
// of its input.
type Simulator struct {
	capacity int
	trace    []policy.Key
	stats    stats.Collector
	logger   *zap.Logger
}

// NewSimulator creates a Simulator for the given capacity and trace.
func NewSimulator(capacity int, trace []policy.Key, opts ...Option) *Simulator {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return &Simulator{
		capacity: capacity,
		trace:    trace,
		stats:    cfg.stats,
		logger:   cfg.logger,
	}
}

// Trace returns the trace this simulator replays. The caller must not
// mutate it during a run.
func (s *Simulator) Trace() []policy.Key {
	return s.trace
}

// Run replays the full trace through p and returns the result record.
//
// Replay is deterministic given a deterministic policy and a fixed trace.
// If ctx is canceled between accesses the replay stops and Run returns the
// partial result together with ctx's error; the partial counters are valid.
// An Access error (e.g. an unprimed OPT) aborts the run with a nil result.
func (s *Simulator) Run(ctx context.Context, name string, p policy.Policy) (*SimulationResult, error) {
	var (
		hits    int
		misses  int
		elapsed time.Duration
	)

	for i, key := range s.trace {
		select {
		case <-ctx.Done():
			s.logger.Debug("simulation canceled",
				zap.String("algorithm", name),
				zap.Int("processed", i),
			)
			return s.result(name, p, hits, misses, i, elapsed), ctx.Err()
		default:
		}

		start := time.Now()
		hit, err := p.Access(key)
		cost := time.Since(start)
		elapsed += cost

		if err != nil {
			return nil, fmt.Errorf("access %d (key %d): %w", i, key, err)
		}
		if hit {
			hits++
		} else {
			misses++
		}
		s.stats.ObserveHistogram(stats.MetricOverhead, cost.Seconds())
	}

	s.stats.IncCounter(stats.MetricAccesses, int64(len(s.trace)))
	s.stats.IncCounter(stats.MetricHits, int64(hits))
	s.stats.IncCounter(stats.MetricMisses, int64(misses))

	result := s.result(name, p, hits, misses, len(s.trace), elapsed)
	s.logger.Debug("simulation complete",
		zap.String("algorithm", name),
		zap.Int("requests", result.TotalRequests),
		zap.Float64("hitRate", result.HitRate()),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func (s *Simulator) result(name string, p policy.Policy, hits, misses, requests int, elapsed time.Duration) *SimulationResult {
	return &SimulationResult{
		Algorithm:     name,
		Capacity:      s.capacity,
		TotalRequests: requests,
		Hits:          hits,
		Misses:        misses,
		Elapsed:       elapsed,
		PolicyStats:   p.Stats(),
	}
}
