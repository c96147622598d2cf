package analysis

import (
	"fmt"
	"sort"
)

// AlgorithmComparison contains a full statistical comparison of two
// algorithms over matched per-workload hit-rate samples.
type AlgorithmComparison struct {
	Algorithm1      string
	Algorithm2      string
	Stats1          *DescriptiveStats
	Stats2          *DescriptiveStats
	MannWhitney     *MannWhitneyResult
	EffectSize      *EffectSize
	BootstrapCI     *BootstrapResult
	Winner          string // Name of the algorithm with the higher mean hit rate, or "tie".
	WinnerConfident bool   // True if statistically significant.
}

// CompareAlgorithms compares two algorithms on their per-workload hit rates
// (percentages). The algorithm with the higher mean wins.
func CompareAlgorithms(
	name1 string, rates1 []float64,
	name2 string, rates2 []float64,
	bootstrapIterations int,
	confidence float64,
) *AlgorithmComparison {
	mw := MannWhitneyU(rates1, rates2)
	es := ComputeEffectSize(rates1, rates2)
	bs := BootstrapConfidenceInterval(rates1, rates2, bootstrapIterations, confidence)

	stats1 := Describe(rates1)
	stats2 := Describe(rates2)

	var winner string
	var confident bool

	switch {
	case stats1.Mean > stats2.Mean:
		winner = name1
		confident = mw.Significant
	case stats2.Mean > stats1.Mean:
		winner = name2
		confident = mw.Significant
	default:
		winner = "tie"
	}

	return &AlgorithmComparison{
		Algorithm1:      name1,
		Algorithm2:      name2,
		Stats1:          stats1,
		Stats2:          stats2,
		MannWhitney:     mw,
		EffectSize:      es,
		BootstrapCI:     bs,
		Winner:          winner,
		WinnerConfident: confident,
	}
}

// Summary returns a human-readable summary of the comparison.
func (c *AlgorithmComparison) Summary() string {
	sig := "not statistically significant"
	if c.MannWhitney.Significant {
		sig = fmt.Sprintf("statistically significant (p=%.4f)", c.MannWhitney.PValue)
	}

	return fmt.Sprintf(
		"%s vs %s:\n"+
			"  %s: mean=%.2f%%, median=%.2f%%, std=%.2f\n"+
			"  %s: mean=%.2f%%, median=%.2f%%, std=%.2f\n"+
			"  Difference: %.2f percentage points\n"+
			"  Effect size: %.2f (%s)\n"+
			"  Result: %s, %s",
		c.Algorithm1, c.Algorithm2,
		c.Algorithm1, c.Stats1.Mean, c.Stats1.Median, c.Stats1.StdDev,
		c.Algorithm2, c.Stats2.Mean, c.Stats2.Median, c.Stats2.StdDev,
		c.Stats1.Mean-c.Stats2.Mean,
		c.EffectSize.CohensD, c.EffectSize.Interpretation,
		c.Winner, sig,
	)
}

// MultiComparison compares multiple algorithms against one baseline.
type MultiComparison struct {
	Baseline    string
	Comparisons []*AlgorithmComparison
}

// CompareAll compares every algorithm's hit-rate samples against the named
// baseline. Comparisons are ordered by algorithm name for determinism.
func CompareAll(
	samples map[string][]float64,
	baseline string,
	bootstrapIterations int,
	confidence float64,
) *MultiComparison {
	baseRates, ok := samples[baseline]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(samples))
	for name := range samples {
		if name != baseline {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	multi := &MultiComparison{Baseline: baseline}
	for _, name := range names {
		comp := CompareAlgorithms(name, samples[name], baseline, baseRates, bootstrapIterations, confidence)
		multi.Comparisons = append(multi.Comparisons, comp)
	}
	return multi
}
