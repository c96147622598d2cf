package capsim_test

import (
	"context"
	"errors"
	"testing"

	capsim "github.com/YouXiangyu/cache-algorithm-simulator"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

func TestNew_AllAlgorithms(t *testing.T) {
	trace := []policy.Key{1, 2, 3}
	for _, algo := range capsim.Algorithms() {
		p, err := capsim.New(algo, 4, capsim.WithFutureTrace(trace))
		if err != nil {
			t.Errorf("New(%s) error = %v", algo, err)
			continue
		}
		if p == nil {
			t.Errorf("New(%s) returned nil policy", algo)
		}
	}
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := capsim.New("CLOCK", 4)
	if !errors.Is(err, capsim.ErrUnknownAlgorithm) {
		t.Errorf("New(CLOCK) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, algo := range capsim.Algorithms() {
		if _, err := capsim.New(algo, 0); !errors.Is(err, policy.ErrInvalidCapacity) {
			t.Errorf("New(%s, 0) error = %v, want ErrInvalidCapacity", algo, err)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	algo, err := capsim.ParseAlgorithm("2Q")
	if err != nil {
		t.Fatalf("ParseAlgorithm(2Q) error = %v", err)
	}
	if algo != capsim.TwoQ {
		t.Errorf("ParseAlgorithm(2Q) = %s, want %s", algo, capsim.TwoQ)
	}

	if _, err := capsim.ParseAlgorithm("lru"); !errors.Is(err, capsim.ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(lru) error = %v, want ErrUnknownAlgorithm (names are case-sensitive)", err)
	}
}

func TestNew_OptionsIgnoredByOtherAlgorithms(t *testing.T) {
	// One option set must be safe to pass to every constructor.
	opts := []capsim.PolicyOption{
		capsim.WithFutureTrace([]policy.Key{1, 2}),
		capsim.WithTwoQSizes(2, 8),
	}
	for _, algo := range capsim.Algorithms() {
		p, err := capsim.New(algo, 4, opts...)
		if err != nil {
			t.Fatalf("New(%s) error = %v", algo, err)
		}
		if _, err := p.Access(1); err != nil {
			t.Errorf("New(%s).Access(1) error = %v", algo, err)
		}
	}
}

// TestOPTOptimality replays the same traces through every policy and checks
// Belady's bound: OPT's hit count is never beaten.
func TestOPTOptimality(t *testing.T) {
	traces := map[string][]policy.Key{
		"cyclic":  cyclicTrace(5000, 48),
		"hotCold": hotColdTrace(5000),
		"repeat":  {1, 2, 3, 1, 2, 3, 4},
	}

	for name, trace := range traces {
		t.Run(name, func(t *testing.T) {
			for _, capacity := range []int{2, 8, 32} {
				sim := capsim.NewSimulator(capacity, trace)

				optPolicy, err := capsim.New(capsim.OPT, capacity, capsim.WithFutureTrace(trace))
				if err != nil {
					t.Fatalf("New(OPT) error = %v", err)
				}
				optResult, err := sim.Run(context.Background(), "OPT", optPolicy)
				if err != nil {
					t.Fatalf("Run(OPT) error = %v", err)
				}

				for _, algo := range capsim.Algorithms() {
					if algo == capsim.OPT {
						continue
					}
					p, err := capsim.New(algo, capacity, capsim.WithTwoQSizes(0, 0))
					if err != nil {
						t.Fatalf("New(%s) error = %v", algo, err)
					}
					result, err := sim.Run(context.Background(), string(algo), p)
					if err != nil {
						t.Fatalf("Run(%s) error = %v", algo, err)
					}
					if result.Hits > optResult.Hits {
						t.Errorf("capacity %d: %s hits = %d > OPT hits = %d",
							capacity, algo, result.Hits, optResult.Hits)
					}
				}
			}
		})
	}
}

func cyclicTrace(n, pages int) []policy.Key {
	trace := make([]policy.Key, n)
	for i := range trace {
		trace[i] = policy.Key(i % pages)
	}
	return trace
}

func hotColdTrace(n int) []policy.Key {
	trace := make([]policy.Key, n)
	for i := range trace {
		if i%3 == 0 {
			trace[i] = policy.Key(i % 7) // hot
		} else {
			trace[i] = policy.Key(100 + i%211) // cold
		}
	}
	return trace
}
