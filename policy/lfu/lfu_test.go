package lfu

import (
	"testing"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

func TestNew_InvalidCapacity(t *testing.T) {
	if _, err := New(0); err != policy.ErrInvalidCapacity {
		t.Errorf("New(0) error = %v, want ErrInvalidCapacity", err)
	}
}

func TestAccess_FrequencyEviction(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	trace := []policy.Key{1, 2, 1, 3}
	want := []bool{false, false, true, false}

	for i, key := range trace {
		hit, err := p.Access(key)
		if err != nil {
			t.Fatalf("Access(%d) error = %v", key, err)
		}
		if hit != want[i] {
			t.Errorf("Access(%d) at step %d = %v, want %v", key, i, hit, want[i])
		}
	}

	// Key 2 had frequency 1 and was the oldest in the min-frequency
	// bucket, so the 4th access evicted it; residents are {1,3}.
	if hit, _ := p.Access(1); !hit {
		t.Error("Access(1) = miss, want hit")
	}
	if hit, _ := p.Access(3); !hit {
		t.Error("Access(3) = miss, want hit")
	}
	if hit, _ := p.Access(2); hit {
		t.Error("Access(2) = hit, want miss (2 was the min-frequency victim)")
	}
}

// TestTieBreak_LeastRecentlyPromoted checks that among equal-frequency keys
// the one promoted into the bucket longest ago is evicted first.
func TestTieBreak_LeastRecentlyPromoted(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// All three reach frequency 2; promotion order into the freq-2
	// bucket is 2, then 1, then 3.
	for _, key := range []policy.Key{1, 2, 3, 2, 1, 3} {
		p.Access(key)
	}

	// Miss at capacity: the freq-2 bucket is the minimum, and key 2 is
	// its least recently promoted member.
	p.Access(4)

	if hit, _ := p.Access(2); hit {
		t.Error("Access(2) = hit, want miss (2 was least recently promoted at min frequency)")
	}
	for _, key := range []policy.Key{1, 3} {
		p2, _ := New(3)
		for _, k := range []policy.Key{1, 2, 3, 2, 1, 3, 4} {
			p2.Access(k)
		}
		if hit, _ := p2.Access(key); !hit {
			t.Errorf("Access(%d) = miss, want hit (only 2 should have been evicted)", key)
		}
	}
}

func TestMinFreqAdvancesWhenBucketDrains(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Both residents reach frequency 2; the freq-1 bucket drains and the
	// minimum must advance, so the next eviction comes from freq 2.
	for _, key := range []policy.Key{1, 2, 1, 2} {
		p.Access(key)
	}
	p.Access(3) // evicts 1, the oldest at frequency 2

	if hit, _ := p.Access(2); !hit {
		t.Error("Access(2) = miss, want hit")
	}
	if hit, _ := p.Access(1); hit {
		t.Error("Access(1) = hit, want miss")
	}
}

func TestCapacityInvariant(t *testing.T) {
	const capacity = 5
	p, err := New(capacity)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 500; i++ {
		p.Access(policy.Key(i % 17))
		if p.Len() > capacity {
			t.Fatalf("Len() = %d after access %d, want <= %d", p.Len(), i, capacity)
		}
	}
}

func TestStats(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, key := range []policy.Key{1, 2, 1, 3} {
		p.Access(key)
	}

	stats := p.Stats()
	if stats["hits"] != 1 || stats["misses"] != 3 {
		t.Errorf("Stats() = %v, want hits=1 misses=3", stats)
	}
}
