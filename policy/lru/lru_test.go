package lru

import (
	"math/rand"
	"testing"

	hashilru "github.com/hashicorp/golang-lru/v2"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -7} {
		if _, err := New(capacity); err != policy.ErrInvalidCapacity {
			t.Errorf("New(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestAccess_RecencyEviction(t *testing.T) {
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

	// The re-reference to 1 made 2 the LRU victim; residents are {1,3}.
	if hit, _ := p.Access(1); !hit {
		t.Error("Access(1) = miss, want hit")
	}
	if hit, _ := p.Access(3); !hit {
		t.Error("Access(3) = miss, want hit")
	}
	if hit, _ := p.Access(2); hit {
		t.Error("Access(2) = hit, want miss (2 was the LRU victim)")
	}
}

// TestAccess_MatchesHashicorpLRU replays random traces against
// hashicorp/golang-lru as a reference and requires identical hit sequences.
func TestAccess_MatchesHashicorpLRU(t *testing.T) {
	const (
		capacity = 16
		requests = 10000
	)

	p, err := New(capacity)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ref, err := hashilru.New[policy.Key, struct{}](capacity)
	if err != nil {
		t.Fatalf("hashicorp lru.New() error = %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < requests; i++ {
		key := policy.Key(rng.Intn(64))

		hit, err := p.Access(key)
		if err != nil {
			t.Fatalf("Access(%d) error = %v", key, err)
		}

		_, refHit := ref.Get(key)
		if !refHit {
			ref.Add(key, struct{}{})
		}

		if hit != refHit {
			t.Fatalf("Access(%d) at step %d = %v, reference = %v", key, i, hit, refHit)
		}
	}
}

func TestDeterminism(t *testing.T) {
	trace := make([]policy.Key, 0, 5000)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		trace = append(trace, policy.Key(rng.Intn(100)))
	}

	replay := func() []bool {
		p, err := New(8)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		outcomes := make([]bool, len(trace))
		for i, key := range trace {
			outcomes[i], _ = p.Access(key)
		}
		return outcomes
	}

	first := replay()
	second := replay()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outcome %d differs between identical replays", i)
		}
	}
}

func TestCapacityInvariant(t *testing.T) {
	const capacity = 8
	p, err := New(capacity)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		p.Access(policy.Key(rng.Intn(50)))
		if p.Len() > capacity {
			t.Fatalf("Len() = %d after access %d, want <= %d", p.Len(), i, capacity)
		}
	}
}
