package opt

import (
	"errors"
	"testing"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

func TestNew_InvalidCapacity(t *testing.T) {
	if _, err := New(0); err != policy.ErrInvalidCapacity {
		t.Errorf("New(0) error = %v, want ErrInvalidCapacity", err)
	}
	if _, err := NewPrimed(0, nil); err != policy.ErrInvalidCapacity {
		t.Errorf("NewPrimed(0) error = %v, want ErrInvalidCapacity", err)
	}
}

func TestAccess_NotPrimed(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := p.Access(1); !errors.Is(err, policy.ErrNotPrimed) {
		t.Fatalf("Access() error = %v, want ErrNotPrimed", err)
	}

	// Priming after the failed access makes the policy usable.
	p.Prime([]policy.Key{1, 2})
	if _, err := p.Access(1); err != nil {
		t.Errorf("Access() after Prime error = %v", err)
	}
}

func TestAccess_BeladyLookahead(t *testing.T) {
	trace := []policy.Key{1, 2, 3, 1, 2, 3, 4}
	p, err := NewPrimed(2, trace)
	if err != nil {
		t.Fatalf("NewPrimed() error = %v", err)
	}

	want := []bool{false, false, false, true, false, true, false}
	for i, key := range trace {
		hit, err := p.Access(key)
		if err != nil {
			t.Fatalf("Access(%d) error = %v", key, err)
		}
		if hit != want[i] {
			t.Errorf("Access(%d) at step %d = %v, want %v", key, i, hit, want[i])
		}
	}

	stats := p.Stats()
	if stats["hits"] != 2 || stats["misses"] != 5 {
		t.Errorf("Stats() = %v, want hits=2 misses=5", stats)
	}
}

// TestVictim_NoFutureLowestKey checks the deterministic tie-break: when
// several residents have no remaining future occurrence, the lowest key is
// evicted.
func TestVictim_NoFutureLowestKey(t *testing.T) {
	trace := []policy.Key{7, 5, 9, 3}
	p, err := NewPrimed(3, trace)
	if err != nil {
		t.Fatalf("NewPrimed() error = %v", err)
	}

	for _, key := range trace[:3] {
		p.Access(key)
	}

	// None of 7, 5, 9 occur again; accessing 3 must evict 5.
	p.Access(3)
	if _, ok := p.resident[5]; ok {
		t.Error("key 5 still resident, want evicted (lowest key with no future)")
	}
	for _, key := range []policy.Key{7, 9, 3} {
		if _, ok := p.resident[key]; !ok {
			t.Errorf("key %d not resident, want resident", key)
		}
	}
}

func TestVictim_FarthestNextOccurrence(t *testing.T) {
	trace := []policy.Key{1, 2, 3, 1, 2, 1}
	p, err := NewPrimed(2, trace)
	if err != nil {
		t.Fatalf("NewPrimed() error = %v", err)
	}

	p.Access(1)
	p.Access(2)
	// Both residents recur: 1 at index 3, 2 at index 4. Admitting 3 must
	// evict 2, whose next occurrence is farther away.
	p.Access(3)

	if _, ok := p.resident[2]; ok {
		t.Error("key 2 still resident, want evicted (farthest next occurrence)")
	}
	if _, ok := p.resident[1]; !ok {
		t.Error("key 1 not resident, want resident")
	}
}

func TestCapacityInvariant(t *testing.T) {
	trace := make([]policy.Key, 0, 2000)
	for i := 0; i < 2000; i++ {
		trace = append(trace, policy.Key(i%37))
	}

	const capacity = 8
	p, err := NewPrimed(capacity, trace)
	if err != nil {
		t.Fatalf("NewPrimed() error = %v", err)
	}
	for i, key := range trace {
		if _, err := p.Access(key); err != nil {
			t.Fatalf("Access(%d) error = %v", key, err)
		}
		if p.Len() > capacity {
			t.Fatalf("Len() = %d after access %d, want <= %d", p.Len(), i, capacity)
		}
	}
}
