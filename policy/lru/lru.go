// Package lru implements least-recently-used cache replacement.
package lru

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/keylist"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy = (*Policy)(nil)

// Policy keeps residents in a recency-ordered list, MRU at the back.
// Hit, promotion, and eviction are all O(1).
type Policy struct {
	capacity int
	order    *keylist.List
	hits     int
	misses   int
}

// New creates an LRU policy with the given capacity.
func New(capacity int) (*Policy, error) {
	if capacity <= 0 {
		return nil, policy.ErrInvalidCapacity
	}
	return &Policy{
		capacity: capacity,
		order:    keylist.New(),
	}, nil
}

// Access records a reference to key and reports whether it was a hit.
// A hit moves the key to the MRU end; a miss at capacity evicts the LRU end.
func (p *Policy) Access(key policy.Key) (bool, error) {
	if p.order.MoveToBack(key) {
		p.hits++
		return true, nil
	}

	p.misses++
	if p.order.Len() >= p.capacity {
		p.order.PopFront()
	}
	p.order.PushBack(key)
	return false, nil
}

// Stats returns the hit and miss counters.
func (p *Policy) Stats() map[string]int {
	return map[string]int{
		"hits":   p.hits,
		"misses": p.misses,
	}
}

// Len returns the number of resident keys.
func (p *Policy) Len() int {
	return p.order.Len()
}
