// Package suite provides a fixed set of deterministic workloads for
// comparing replacement algorithms, plus a batch runner with offline 2Q
// tuning.
//
// The nine workloads target a cache of SuiteCapacity pages and generate
// exactly TargetRequests requests each, built from simple loops and
// sequential scans so the expected hit-rate separation between algorithms
// is reproducible:
//
//   - WL01-WL02 reward frequency tracking (LFU)
//   - WL03-WL04 reward recency tracking (LRU)
//   - WL05 is a pollution pattern that punishes stale frequency counts
//   - WL06, WL08, WL09 alternate patterns to reward adaptivity (ARC)
//   - WL07 sandwiches hot sets between scans to reward scan filtering (2Q)
package suite

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// Suite-wide configuration constants.
const (
	// TargetRequests is the exact length of every suite trace.
	TargetRequests = 50000

	// SuiteCapacity is the cache size the workloads are designed for.
	SuiteCapacity = 32
)

// Recipe describes one suite workload: identification, intent, and the
// builder that materializes its trace.
type Recipe struct {
	Key          string
	Filename     string
	Category     string
	Goal         string
	CapacityHint []int
	Script       []string
	Build        func() []policy.Key
}

// Recipes returns the nine suite workloads in order.
func Recipes() []Recipe {
	return []Recipe{
		{
			Key:          "WL01_STATIC_FREQ",
			Filename:     "WL01_STATIC_FREQ.trace",
			Category:     "LFU",
			Goal:         "Static frequency pattern: small hot set high-frequency, large cold set low-frequency (LFU better)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Hot pages: pages 1-5, each accessed 100 times per round",
				"Cold pages: pages 6-105, each accessed once per round",
				"Per round: 500 hot-page requests + 100 cold-page requests = 600 requests",
			},
			Build: buildStaticFrequency,
		},
		{
			Key:          "WL02_FREQ_BALANCED",
			Filename:     "WL02_FREQ_BALANCED.trace",
			Category:     "LFU",
			Goal:         "Balanced frequency pattern: working set near cache size to test frequency vs. capacity (LFU better)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Hot pages: pages 1-20, each accessed 10 times per round",
				"Warm pages: pages 21-60, each accessed once per round",
				"Per round: 200 hot-page requests + 40 warm-page requests = 240 requests",
			},
			Build: buildFrequencyBalanced,
		},
		{
			Key:          "WL03_STATIC_SW",
			Filename:     "WL03_STATIC_SW.trace",
			Category:     "LRU",
			Goal:         "Static sliding window: window size 28, shift by 1 each time (LRU better)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Window size 28 (slightly smaller than cache size 32)",
				"Shift by 1 position each step",
				"Pure recency pattern, no frequency signal",
			},
			Build: buildStaticSlidingWindow,
		},
		{
			Key:          "WL04_OSC_SW",
			Filename:     "WL04_OSC_SW.trace",
			Category:     "LRU",
			Goal:         "Oscillating sliding window: alternate small (25) and large (45) windows (LRU better)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Small-window phase: window 25, 2,500 requests",
				"Large-window phase: window 45, 2,500 requests",
				"Alternate phases",
			},
			Build: buildOscillatingWindow,
		},
		{
			Key:          "WL05_FIFO_CONVOY",
			Filename:     "WL05_FIFO_CONVOY.trace",
			Category:     "FIFO",
			Goal:         "Cache pollution pattern: high-frequency group A then a hard switch to group B",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Pollution phase: pages 1-32 each accessed 50 times (inflates frequency counters)",
				"Phase shift: discard pages 1-32 entirely, loop pages 33-64",
				"The new working set fits the cache, so recency-based policies recover quickly",
			},
			Build: buildPollutionShift,
		},
		{
			Key:          "WL06_ADAPTIVE_FREQ_RECENCY",
			Filename:     "WL06_ADAPTIVE_FREQ_RECENCY.trace",
			Category:     "ARC",
			Goal:         "Adaptive frequency-recency switching (ARC adaptive)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Phase A: loop pages 1-10 (100 requests)",
				"Phase B: 32-page sliding window (32 requests), drifting each round",
				"Alternate A/B to force switching between frequency and recency",
			},
			Build: buildAdaptiveFreqRecency,
		},
		{
			Key:          "WL07_SCAN_SANDWICH",
			Filename:     "WL07_SCAN_SANDWICH.trace",
			Category:     "2Q",
			Goal:         "Scan sandwich pattern: hot sets interleaved with one-shot scans (2Q better)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Heat wave: three 10-page hot sets accessed with decreasing frequency",
				"Two 32-page drifting windows, then a hot bridge revisiting hot sets 1 and 3",
				"Two 48-page drifting windows probing a larger recency set",
				"Cold scan: one-time access of 200 fresh pages to reset frequency memory",
			},
			Build: buildScanSandwich,
		},
		{
			Key:          "WL08_ARC_MOSAIC",
			Filename:     "WL08_ARC_MOSAIC.trace",
			Category:     "ARC",
			Goal:         "ARC mosaic pattern: hot sets A/B + sliding window + cold scan (ARC adaptive)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Phase A: loop pages 1-6 for 12 rounds to build frequency advantage",
				"Phase B: scan a 30-page sliding window once; drift the window each round",
				"Phase C: loop pages 31-36 for 6 rounds + bridge pages 90-105",
				"Phase D: cold-scan 60 pages, then briefly return to both hot sets",
			},
			Build: buildArcMosaic,
		},
		{
			Key:          "WL09_ADAPTIVE_MIXED",
			Filename:     "WL09_ADAPTIVE_MIXED.trace",
			Category:     "ARC",
			Goal:         "Adaptive mixed pattern: switch among multiple patterns every 5,000 requests (ARC adaptive)",
			CapacityHint: []int{SuiteCapacity},
			Script: []string{
				"Pattern 1: frequency (pages 1-5 hot, pages 6-20 cold)",
				"Pattern 2: recency (30-page sliding window)",
				"Pattern 3: scan + hot set (for every 50 scans, interleave 5 hot-set accesses)",
				"Switch pattern every 5,000 requests",
			},
			Build: buildAdaptiveMixed,
		},
	}
}

// RecipeByKey returns the recipe with the given key.
func RecipeByKey(key string) (Recipe, bool) {
	for _, r := range Recipes() {
		if r.Key == key {
			return r, true
		}
	}
	return Recipe{}, false
}

// appendRange appends the keys start, start+1, ..., start+count-1.
func appendRange(seq []policy.Key, start, count int) []policy.Key {
	for i := 0; i < count; i++ {
		seq = append(seq, policy.Key(start+i))
	}
	return seq
}

// appendKeys appends the given pages in order.
func appendKeys(seq []policy.Key, pages ...int) []policy.Key {
	for _, p := range pages {
		seq = append(seq, policy.Key(p))
	}
	return seq
}

// trimToTarget adjusts seq to exactly target requests, extending it with
// extend (or by repeating the last page when extend is nil) if short.
func trimToTarget(seq []policy.Key, target int, extend func([]policy.Key) []policy.Key) []policy.Key {
	if extend != nil {
		for len(seq) < target {
			seq = extend(seq)
		}
	} else {
		last := policy.Key(1)
		if len(seq) > 0 {
			last = seq[len(seq)-1]
		}
		for len(seq) < target {
			seq = append(seq, last)
		}
	}
	return seq[:target]
}

// WL01: 5 hot pages accessed 100x per round, 100 cold pages once each.
func buildStaticFrequency() []policy.Key {
	addRound := func(seq []policy.Key) []policy.Key {
		for page := 1; page <= 5; page++ {
			for i := 0; i < 100; i++ {
				seq = append(seq, policy.Key(page))
			}
		}
		return appendRange(seq, 6, 100)
	}

	var seq []policy.Key
	for r := 0; r < TargetRequests/600; r++ {
		seq = addRound(seq)
	}
	return trimToTarget(seq, TargetRequests, addRound)
}

// WL02: 20 hot pages accessed 10x per round, 40 warm pages once each.
func buildFrequencyBalanced() []policy.Key {
	addRound := func(seq []policy.Key) []policy.Key {
		for page := 1; page <= 20; page++ {
			for i := 0; i < 10; i++ {
				seq = append(seq, policy.Key(page))
			}
		}
		return appendRange(seq, 21, 40)
	}

	var seq []policy.Key
	for r := 0; r < TargetRequests/240; r++ {
		seq = addRound(seq)
	}
	return trimToTarget(seq, TargetRequests, addRound)
}

// WL03: 28-page window shifted by one position each step.
func buildStaticSlidingWindow() []policy.Key {
	const (
		windowSize = 28
		maxPage    = 500
	)
	span := maxPage - windowSize + 1

	var seq []policy.Key
	numWindows := TargetRequests / windowSize
	for i := 0; i < numWindows && len(seq) < TargetRequests; i++ {
		start := 1 + i%span
		for offset := 0; offset < windowSize && len(seq) < TargetRequests; offset++ {
			seq = append(seq, policy.Key(start+offset))
		}
	}

	// Top up the remainder with one more partial window.
	start := 1 + numWindows%span
	for offset := 0; len(seq) < TargetRequests; offset++ {
		if start+offset > maxPage {
			start, offset = 1, 0
		}
		seq = append(seq, policy.Key(start+offset))
	}
	return seq[:TargetRequests]
}

// WL04: window size oscillates between 25 and 45 every 2,500 requests.
func buildOscillatingWindow() []policy.Key {
	const (
		smallWindow = 25
		largeWindow = 45
		maxPage     = 500
		phaseLength = 2500
	)

	var seq []policy.Key
	windowStart := 1
	for phase := 0; len(seq) < TargetRequests; phase++ {
		windowSize := smallWindow
		if phase%2 == 1 {
			windowSize = largeWindow
		}

		requestsInPhase := min(phaseLength, TargetRequests-len(seq))
		windowsInPhase := requestsInPhase / windowSize
		if windowsInPhase == 0 {
			break
		}

		for i := 0; i < windowsInPhase && len(seq) < TargetRequests; i++ {
			start := windowStart + i
			if start+windowSize > maxPage {
				start = 1
			}
			for offset := 0; offset < windowSize && len(seq) < TargetRequests; offset++ {
				seq = append(seq, policy.Key(start+offset))
			}
		}

		windowStart = (windowStart + windowsInPhase) % (maxPage - windowSize + 1)
		if windowStart == 0 {
			windowStart = 1
		}
	}
	return trimToTarget(seq, TargetRequests, nil)
}

// WL05: inflate frequency counters on pages 1-32, then switch the working
// set entirely to pages 33-64.
func buildPollutionShift() []policy.Key {
	var seq []policy.Key
	for i := 0; i < 50; i++ {
		seq = appendRange(seq, 1, 32)
	}
	for len(seq) < TargetRequests {
		seq = appendRange(seq, 33, 32)
	}
	return seq[:TargetRequests]
}

// WL06: alternate a hot loop over pages 1-10 with a drifting 32-page window.
func buildAdaptiveFreqRecency() []policy.Key {
	const (
		windowSize = 32
		maxPage    = 500
	)

	phaseA := func(seq []policy.Key) []policy.Key {
		for i := 0; i < 10; i++ {
			seq = appendRange(seq, 1, 10)
		}
		return seq
	}
	phaseB := func(seq []policy.Key, step int) []policy.Key {
		start := 1 + step*7%(maxPage-windowSize+1)
		return appendRange(seq, start, windowSize)
	}

	var seq []policy.Key
	// Each cycle is 100 + 32 = 132 requests.
	for step := 0; step < TargetRequests/132; step++ {
		seq = phaseA(seq)
		seq = phaseB(seq, step)
	}
	return trimToTarget(seq, TargetRequests, phaseA)
}

// WL07: hot sets with decreasing frequency, drifting windows of two sizes,
// a hot bridge, and a 200-page cold scan per cycle.
func buildScanSandwich() []policy.Key {
	const (
		windowSmall = 32
		windowLarge = 48
		maxPage     = 900
	)
	var (
		hotSets    = [][2]int{{1, 10}, {11, 10}, {31, 10}} // {start, len}
		hotRepeats = []int{5, 4, 3}
		smallSpan  = maxPage - windowSmall - 49
		largeSpan  = maxPage - windowLarge - 99
	)

	addCycle := func(seq []policy.Key, step int) []policy.Key {
		for i, hs := range hotSets {
			for r := 0; r < hotRepeats[i]; r++ {
				seq = appendRange(seq, hs[0], hs[1])
			}
		}

		seq = appendRange(seq, 50+step*19%smallSpan, windowSmall)
		seq = appendRange(seq, 100+step*23%smallSpan, windowSmall)

		for i := 0; i < 3; i++ {
			seq = appendRange(seq, hotSets[0][0], hotSets[0][1])
			seq = appendRange(seq, hotSets[2][0], hotSets[2][1])
		}

		seq = appendRange(seq, 150+step*29%largeSpan, windowLarge)
		seq = appendRange(seq, 220+step*31%largeSpan, windowLarge)

		return appendRange(seq, 4000+step*200, 200)
	}

	// Cycle length: 120 hot + 64 small windows + 60 bridge + 96 large
	// windows + 200 scan = 540 requests.
	var seq []policy.Key
	step := 0
	for ; step < TargetRequests/540; step++ {
		seq = addCycle(seq, step)
	}
	for len(seq) < TargetRequests {
		seq = addCycle(seq, step)
		step++
	}
	return seq[:TargetRequests]
}

// WL08: two small hot sets, a drifting 30-page window, a bridge, and a
// 60-page cold scan per cycle.
func buildArcMosaic() []policy.Key {
	const (
		windowSize    = 30
		maxWindowPage = 900
	)
	windowSpan := maxWindowPage - windowSize - 200

	addCycle := func(seq []policy.Key, step int) []policy.Key {
		for i := 0; i < 12; i++ {
			seq = appendRange(seq, 1, 6) // hot set A
		}

		seq = appendRange(seq, 200+step*23%windowSpan, windowSize)

		for i := 0; i < 6; i++ {
			seq = appendRange(seq, 31, 6) // hot set B
		}
		seq = appendRange(seq, 90, 16) // bridge

		seq = appendRange(seq, 1200+step*60, 60) // cold scan
		seq = appendRange(seq, 1, 6)
		return appendRange(seq, 31, 6)
	}

	// Cycle length: 72 + 30 + 36 + 16 + 60 + 6 + 6 = 226 requests.
	var seq []policy.Key
	step := 0
	for ; step < TargetRequests/226; step++ {
		seq = addCycle(seq, step)
	}
	for len(seq) < TargetRequests {
		seq = addCycle(seq, step)
		step++
	}
	return seq[:TargetRequests]
}

// WL09: rotate frequency, recency, and scan+hot-set patterns every 5,000
// requests.
func buildAdaptiveMixed() []policy.Key {
	const phaseLength = 5000

	var seq []policy.Key
	for phase := 0; len(seq) < TargetRequests; phase++ {
		requestsInPhase := min(phaseLength, TargetRequests-len(seq))

		switch phase % 3 {
		case 0: // frequency: pages 1-5 hot, 6-20 cold
			count := 0
			for count < requestsInPhase && len(seq) < TargetRequests {
				for page := 1; page <= 5; page++ {
					if count >= requestsInPhase || len(seq) >= TargetRequests {
						break
					}
					for i := 0; i < 10; i++ {
						seq = append(seq, policy.Key(page))
					}
					count += 10
				}
				for page := 6; page <= 20; page++ {
					if count >= requestsInPhase || len(seq) >= TargetRequests {
						break
					}
					seq = append(seq, policy.Key(page))
					count++
				}
			}

		case 1: // recency: 30-page window drifting with the phase
			const (
				windowSize = 30
				maxPage    = 500
			)
			start := 1 + (phase/3)*10%(maxPage-windowSize+1)
			for i := 0; i < requestsInPhase/windowSize; i++ {
				currentStart := start + i
				if currentStart+windowSize > maxPage {
					currentStart = 1
				}
				for offset := 0; offset < windowSize && len(seq) < TargetRequests; offset++ {
					seq = append(seq, policy.Key(currentStart+offset))
				}
				if len(seq) >= TargetRequests {
					break
				}
			}

		case 2: // scan + hot set: 5 hot accesses per 50 requests
			scanPos := 1000 + (phase/3)*1000
			hotIndex := 0
			for i := 0; i < requestsInPhase && len(seq) < TargetRequests; i++ {
				if i%50 < 5 {
					seq = appendKeys(seq, 1+hotIndex%3)
					hotIndex++
				} else {
					seq = appendKeys(seq, scanPos)
					scanPos++
				}
			}
		}
	}
	return seq[:TargetRequests]
}
