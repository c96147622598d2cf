// Package capsim evaluates and compares cache replacement policies by
// replaying a trace of key accesses against each policy and recording
// hit/miss outcomes.
//
// Example usage:
//
//	p, err := capsim.New(capsim.ARC, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sim := capsim.NewSimulator(32, trace)
//	result, err := sim.Run(ctx, string(capsim.ARC), p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("hit rate: %.2f%%\n", result.HitRate())
package capsim

import (
	"errors"
	"fmt"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy/arc"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy/fifo"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy/lfu"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy/lru"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy/opt"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy/twoq"
)

// ErrUnknownAlgorithm indicates a name that maps to no known policy.
var ErrUnknownAlgorithm = errors.New("capsim: unknown algorithm")

// Algorithm names a cache replacement policy.
type Algorithm string

// The supported replacement algorithms.
const (
	LRU  Algorithm = "LRU"
	LFU  Algorithm = "LFU"
	FIFO Algorithm = "FIFO"
	ARC  Algorithm = "ARC"
	TwoQ Algorithm = "2Q"
	OPT  Algorithm = "OPT"
)

// Algorithms returns all supported algorithms in canonical run order.
func Algorithms() []Algorithm {
	return []Algorithm{LFU, LRU, FIFO, TwoQ, ARC, OPT}
}

// ParseAlgorithm maps a name to an Algorithm.
// Returns ErrUnknownAlgorithm for names New would reject.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, algo := range Algorithms() {
		if string(algo) == name {
			return algo, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New constructs the named policy with the given capacity. Dispatch happens
// once, here; the returned policy is used purely through the contract.
//
// Options not applicable to the chosen algorithm are ignored, so a caller
// can pass one option set when constructing every algorithm for a run.
// Returns ErrUnknownAlgorithm for unrecognized names and
// policy.ErrInvalidCapacity when capacity <= 0.
func New(algo Algorithm, capacity int, opts ...PolicyOption) (policy.Policy, error) {
	cfg := policyOptions{}
	for _, opt := range opts {
		opt.applyPolicy(&cfg)
	}

	switch algo {
	case LRU:
		return lru.New(capacity)
	case LFU:
		return lfu.New(capacity)
	case FIFO:
		return fifo.New(capacity)
	case ARC:
		return arc.New(capacity)
	case TwoQ:
		return twoq.NewWithSizes(capacity, cfg.twoQSizeIn, cfg.twoQSizeOut)
	case OPT:
		if cfg.futureTrace != nil {
			return opt.NewPrimed(capacity, cfg.futureTrace)
		}
		return opt.New(capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}
