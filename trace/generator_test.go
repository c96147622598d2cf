package trace

import (
	"testing"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

func TestStatic(t *testing.T) {
	g := NewGenerator(42)
	seq := g.Static(StaticConfig{TotalRequests: 5000, TotalPages: 100, HotRatio: 0.8, ScanRatio: 0.2})

	if len(seq) != 5000 {
		t.Fatalf("len = %d, want 5000", len(seq))
	}
	for i, key := range seq {
		if key < 0 || key >= 100 {
			t.Fatalf("key %d at %d out of page range [0,100)", key, i)
		}
	}

	// With HotRatio 0.8 the hot set (pages 0-79) should dominate.
	var hot int
	for _, key := range seq {
		if key < 80 {
			hot++
		}
	}
	if hot < 3500 {
		t.Errorf("hot accesses = %d of 5000, want a clear majority", hot)
	}
}

func TestStatic_Defaults(t *testing.T) {
	seq := NewGenerator(1).Static(StaticConfig{})
	if len(seq) != 10000 {
		t.Errorf("len = %d, want default 10000", len(seq))
	}
}

func TestDynamic(t *testing.T) {
	g := NewGenerator(42)
	cfg := DynamicConfig{TotalRequests: 8000, HotSetSize: 50, ScanLength: 200, Phases: 4}
	seq := g.Dynamic(cfg)

	if len(seq) != cfg.TotalRequests {
		t.Fatalf("len = %d, want %d", len(seq), cfg.TotalRequests)
	}

	// Each phase ends with a fresh sequential scan; the scans never
	// revisit a page, so scan keys strictly increase across the trace.
	last := policy.Key(cfg.HotSetSize - 1)
	for i, key := range seq {
		if key < policy.Key(cfg.HotSetSize) {
			continue
		}
		if key <= last {
			t.Fatalf("scan key %d at %d not increasing (last %d)", key, i, last)
		}
		last = key
	}
}

func TestOscillating(t *testing.T) {
	g := NewGenerator(42)
	cfg := OscillatingConfig{Cycles: 3, HotBurst: 100, ScanBurst: 50, HotSetSize: 10}
	seq := g.Oscillating(cfg)

	want := cfg.Cycles * (cfg.HotBurst + cfg.ScanBurst)
	if len(seq) != want {
		t.Fatalf("len = %d, want %d", len(seq), want)
	}

	// Check the cycle structure: hot burst keys stay in the hot set,
	// scan burst keys do not.
	for c := 0; c < cfg.Cycles; c++ {
		base := c * (cfg.HotBurst + cfg.ScanBurst)
		for i := 0; i < cfg.HotBurst; i++ {
			if key := seq[base+i]; key >= policy.Key(cfg.HotSetSize) {
				t.Fatalf("cycle %d: hot key %d out of hot set", c, key)
			}
		}
		for i := 0; i < cfg.ScanBurst; i++ {
			if key := seq[base+cfg.HotBurst+i]; key < policy.Key(cfg.HotSetSize) {
				t.Fatalf("cycle %d: scan key %d inside hot set", c, key)
			}
		}
	}
}

func TestGenerator_SeedDeterminism(t *testing.T) {
	cfg := StaticConfig{TotalRequests: 2000, TotalPages: 100}
	first := NewGenerator(7).Static(cfg)
	second := NewGenerator(7).Static(cfg)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("key %d differs between same-seed generators", i)
		}
	}

	third := NewGenerator(8).Static(cfg)
	same := true
	for i := range first {
		if first[i] != third[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical traces")
	}
}
