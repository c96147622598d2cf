// Package trace generates and stores key-access traces for the simulator.
//
// A trace is an ordered, finite sequence of non-negative keys, fully
// materialized in memory. Generators are deterministic for a given seed.
package trace

import (
	"math/rand"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// StaticConfig parameterizes a stationary hot/cold mix: a hot set accessed
// with probability HotRatio and a scan set walked sequentially otherwise.
type StaticConfig struct {
	TotalRequests int     // default 10000
	TotalPages    int     // default 1000, minimum 2
	HotRatio      float64 // default 0.8
	ScanRatio     float64 // default 0.2
}

// DynamicConfig parameterizes phased behavior: each phase hammers a fixed
// hot set, then scans ScanLength fresh pages.
type DynamicConfig struct {
	TotalRequests int // default 20000
	HotSetSize    int // default 100
	ScanLength    int // default 500
	Phases        int // default 4
}

// OscillatingConfig parameterizes thrash-inducing cycles that alternate a
// hot burst with a scan burst. Total length is Cycles*(HotBurst+ScanBurst).
type OscillatingConfig struct {
	Cycles     int // default 5
	HotBurst   int // default 2000
	ScanBurst  int // default 2000
	HotSetSize int // default 100
}

// Generator produces synthetic workload traces from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded for reproducibility.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Static generates a stationary hot/cold workload.
func (g *Generator) Static(cfg StaticConfig) []policy.Key {
	if cfg.TotalRequests <= 0 {
		cfg.TotalRequests = 10000
	}
	if cfg.TotalPages < 2 {
		cfg.TotalPages = 1000
	}
	if cfg.HotRatio <= 0 {
		cfg.HotRatio = 0.8
	}
	if cfg.ScanRatio <= 0 {
		cfg.ScanRatio = 0.2
	}

	hotSetSize := max(1, int(float64(cfg.TotalPages)*cfg.HotRatio))
	scanSetSize := max(1, int(float64(cfg.TotalPages)*cfg.ScanRatio))

	seq := make([]policy.Key, 0, cfg.TotalRequests)
	scanCursor := 0
	for i := 0; i < cfg.TotalRequests; i++ {
		if g.rng.Float64() < cfg.HotRatio {
			seq = append(seq, policy.Key(g.rng.Intn(hotSetSize)))
		} else {
			seq = append(seq, policy.Key(hotSetSize+scanCursor%scanSetSize))
			scanCursor++
		}
	}
	return seq
}

// Dynamic generates a phased hot-set-then-scan workload.
func (g *Generator) Dynamic(cfg DynamicConfig) []policy.Key {
	if cfg.TotalRequests <= 0 {
		cfg.TotalRequests = 20000
	}
	if cfg.HotSetSize < 1 {
		cfg.HotSetSize = 100
	}
	if cfg.ScanLength < 1 {
		cfg.ScanLength = 500
	}
	if cfg.Phases < 1 {
		cfg.Phases = 4
	}

	seq := make([]policy.Key, 0, cfg.TotalRequests)
	nextScanPage := cfg.HotSetSize
	requestsPerPhase := cfg.TotalRequests / cfg.Phases
	hotAccesses := max(0, requestsPerPhase-cfg.ScanLength)

	for phase := 0; phase < cfg.Phases; phase++ {
		for i := 0; i < hotAccesses; i++ {
			seq = append(seq, policy.Key(g.rng.Intn(cfg.HotSetSize)))
		}
		for i := 0; i < cfg.ScanLength; i++ {
			seq = append(seq, policy.Key(nextScanPage))
			nextScanPage++
		}
	}

	for len(seq) < cfg.TotalRequests {
		seq = append(seq, policy.Key(g.rng.Intn(cfg.HotSetSize)))
	}
	return seq[:cfg.TotalRequests]
}

// Oscillating generates alternating hot and scan bursts.
func (g *Generator) Oscillating(cfg OscillatingConfig) []policy.Key {
	if cfg.Cycles < 1 {
		cfg.Cycles = 5
	}
	if cfg.HotBurst < 1 {
		cfg.HotBurst = 2000
	}
	if cfg.ScanBurst < 1 {
		cfg.ScanBurst = 2000
	}
	if cfg.HotSetSize < 1 {
		cfg.HotSetSize = 100
	}

	seq := make([]policy.Key, 0, cfg.Cycles*(cfg.HotBurst+cfg.ScanBurst))
	nextScanPage := cfg.HotSetSize
	for c := 0; c < cfg.Cycles; c++ {
		for i := 0; i < cfg.HotBurst; i++ {
			seq = append(seq, policy.Key(g.rng.Intn(cfg.HotSetSize)))
		}
		for i := 0; i < cfg.ScanBurst; i++ {
			seq = append(seq, policy.Key(nextScanPage))
			nextScanPage++
		}
	}
	return seq
}
