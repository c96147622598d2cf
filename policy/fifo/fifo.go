// Package fifo implements first-in first-out cache replacement.
package fifo

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/keylist"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy = (*Policy)(nil)

// Policy evicts in pure arrival order. A hit never reorders the queue.
type Policy struct {
	capacity int
	queue    *keylist.List
	hits     int
	misses   int
}

// New creates a FIFO policy with the given capacity.
func New(capacity int) (*Policy, error) {
	if capacity <= 0 {
		return nil, policy.ErrInvalidCapacity
	}
	return &Policy{
		capacity: capacity,
		queue:    keylist.New(),
	}, nil
}

// Access records a reference to key and reports whether it was a hit.
func (p *Policy) Access(key policy.Key) (bool, error) {
	if p.queue.Has(key) {
		p.hits++
		return true, nil
	}

	p.misses++
	if p.queue.Len() >= p.capacity {
		p.queue.PopFront()
	}
	p.queue.PushBack(key)
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
	return p.queue.Len()
}
