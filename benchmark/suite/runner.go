package suite

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	capsim "github.com/YouXiangyu/cache-algorithm-simulator"
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/stats"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// TuneResult holds the outcome of an offline 2Q parameter search.
type TuneResult struct {
	SizeIn  int
	SizeOut int
	HitRate float64
}

// tuneSizeOut is the fixed ghost-list size used during 2Q tuning.
const tuneSizeOut = 32

// TuneTwoQ searches A1in sizes 1..min(16, capacity-1) offline against the
// given trace and returns the configuration with the highest hit rate.
// Ties go to the smaller A1in.
func TuneTwoQ(ctx context.Context, trace []policy.Key, capacity int) (TuneResult, error) {
	if capacity < 1 {
		return TuneResult{}, policy.ErrInvalidCapacity
	}

	maxSizeIn := min(16, capacity-1)
	if maxSizeIn < 1 {
		maxSizeIn = 1
	}

	best := TuneResult{SizeIn: 1, SizeOut: tuneSizeOut, HitRate: -1}
	for sizeIn := 1; sizeIn <= maxSizeIn; sizeIn++ {
		p, err := capsim.New(capsim.TwoQ, capacity, capsim.WithTwoQSizes(sizeIn, tuneSizeOut))
		if err != nil {
			return TuneResult{}, fmt.Errorf("tuning 2Q (sizeIn=%d): %w", sizeIn, err)
		}

		hits := 0
		for i, key := range trace {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return TuneResult{}, err
				}
			}
			hit, err := p.Access(key)
			if err != nil {
				return TuneResult{}, fmt.Errorf("tuning 2Q (sizeIn=%d): %w", sizeIn, err)
			}
			if hit {
				hits++
			}
		}

		rate := 0.0
		if len(trace) > 0 {
			rate = float64(hits) / float64(len(trace)) * 100
		}
		if rate > best.HitRate {
			best = TuneResult{SizeIn: sizeIn, SizeOut: tuneSizeOut, HitRate: rate}
		}
	}
	return best, nil
}

// WorkloadResult holds the results of one workload across all algorithms.
type WorkloadResult struct {
	Recipe  Recipe
	Tuning  TuneResult
	Results []*capsim.SimulationResult
}

// Result returns the result for the named algorithm.
func (w *WorkloadResult) Result(algo capsim.Algorithm) (*capsim.SimulationResult, bool) {
	for _, r := range w.Results {
		if r.Algorithm == string(algo) {
			return r, true
		}
	}
	return nil, false
}

// BestNonOPT returns the highest hit-rate result excluding the clairvoyant
// baseline. Ties go to the algorithm listed first.
func (w *WorkloadResult) BestNonOPT() *capsim.SimulationResult {
	var best *capsim.SimulationResult
	for _, r := range w.Results {
		if r.Algorithm == string(capsim.OPT) {
			continue
		}
		if best == nil || r.HitRate() > best.HitRate() {
			best = r
		}
	}
	return best
}

// Summary aggregates the results of a full suite run.
type Summary struct {
	Capacity  int
	Workloads []*WorkloadResult
}

// Samples returns the per-workload hit rates for one algorithm, in suite
// order. Workloads missing the algorithm are skipped.
func (s *Summary) Samples(algo capsim.Algorithm) []float64 {
	rates := make([]float64, 0, len(s.Workloads))
	for _, w := range s.Workloads {
		if r, ok := w.Result(algo); ok {
			rates = append(rates, r.HitRate())
		}
	}
	return rates
}

// Runner executes suite workloads against every algorithm.
type Runner struct {
	capacity int
	logger   *zap.Logger
	stats    stats.Collector
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithStats sets the runner's metrics collector.
func WithStats(collector stats.Collector) RunnerOption {
	return func(r *Runner) { r.stats = collector }
}

// NewRunner returns a Runner for the given cache capacity.
func NewRunner(capacity int, opts ...RunnerOption) (*Runner, error) {
	if capacity < 1 {
		return nil, policy.ErrInvalidCapacity
	}
	r := &Runner{
		capacity: capacity,
		logger:   zap.NewNop(),
		stats:    stats.NewNoop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RunRecipe builds the recipe's trace, tunes 2Q offline, and replays the
// trace through every algorithm.
func (r *Runner) RunRecipe(ctx context.Context, recipe Recipe) (*WorkloadResult, error) {
	trace := recipe.Build()
	return r.RunTrace(ctx, recipe, trace)
}

// RunTrace runs all algorithms over an already-built trace. The recipe is
// used for identification only.
func (r *Runner) RunTrace(ctx context.Context, recipe Recipe, trace []policy.Key) (*WorkloadResult, error) {
	r.logger.Info("running workload",
		zap.String("workload", recipe.Key),
		zap.Int("capacity", r.capacity),
		zap.Int("requests", len(trace)))

	tuning, err := TuneTwoQ(ctx, trace, r.capacity)
	if err != nil {
		return nil, fmt.Errorf("workload %s: %w", recipe.Key, err)
	}
	r.stats.IncCounter(stats.MetricTuningRuns, 1)
	r.logger.Debug("tuned 2Q",
		zap.String("workload", recipe.Key),
		zap.Int("size_in", tuning.SizeIn),
		zap.Float64("hit_rate", tuning.HitRate))

	sim := capsim.NewSimulator(r.capacity, trace,
		capsim.WithLogger(r.logger),
		capsim.WithStats(r.stats))

	wr := &WorkloadResult{Recipe: recipe, Tuning: tuning}
	for _, algo := range capsim.Algorithms() {
		var opts []capsim.PolicyOption
		switch algo {
		case capsim.TwoQ:
			opts = append(opts, capsim.WithTwoQSizes(tuning.SizeIn, tuning.SizeOut))
		case capsim.OPT:
			opts = append(opts, capsim.WithFutureTrace(trace))
		}

		p, err := capsim.New(algo, r.capacity, opts...)
		if err != nil {
			return nil, fmt.Errorf("workload %s: constructing %s: %w", recipe.Key, algo, err)
		}
		result, err := sim.Run(ctx, string(algo), p)
		if err != nil {
			return nil, fmt.Errorf("workload %s: running %s: %w", recipe.Key, algo, err)
		}
		wr.Results = append(wr.Results, result)
	}

	r.stats.IncCounter(stats.MetricWorkloadRuns, 1)
	return wr, nil
}

// RunAll runs every suite recipe and returns the aggregated summary.
func (r *Runner) RunAll(ctx context.Context) (*Summary, error) {
	summary := &Summary{Capacity: r.capacity}
	for _, recipe := range Recipes() {
		wr, err := r.RunRecipe(ctx, recipe)
		if err != nil {
			return nil, err
		}
		summary.Workloads = append(summary.Workloads, wr)
	}
	return summary, nil
}
