// Package lfu implements least-frequently-used cache replacement.
package lfu

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/keylist"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy = (*Policy)(nil)

// Policy buckets residents by reference count and tracks the minimum
// occupied frequency. Within a bucket keys keep promotion order, so ties
// among equal-frequency keys evict the least recently promoted first.
type Policy struct {
	capacity int
	freq     map[policy.Key]int
	buckets  map[int]*keylist.List
	minFreq  int
	hits     int
	misses   int
}

// New creates an LFU policy with the given capacity.
func New(capacity int) (*Policy, error) {
	if capacity <= 0 {
		return nil, policy.ErrInvalidCapacity
	}
	return &Policy{
		capacity: capacity,
		freq:     make(map[policy.Key]int),
		buckets:  make(map[int]*keylist.List),
	}, nil
}

// Access records a reference to key and reports whether it was a hit.
func (p *Policy) Access(key policy.Key) (bool, error) {
	if f, ok := p.freq[key]; ok {
		p.hits++
		p.bump(key, f)
		return true, nil
	}

	p.misses++
	if len(p.freq) >= p.capacity {
		p.evict()
	}
	p.freq[key] = 1
	p.bucket(1).PushBack(key)
	p.minFreq = 1
	return false, nil
}

// bump moves key from its current frequency bucket to the next one,
// advancing minFreq when the minimum bucket drains.
func (p *Policy) bump(key policy.Key, f int) {
	b := p.buckets[f]
	b.Remove(key)
	if b.Len() == 0 {
		delete(p.buckets, f)
		if p.minFreq == f {
			p.minFreq++
		}
	}

	p.freq[key] = f + 1
	p.bucket(f + 1).PushBack(key)
}

// evict removes the oldest-promoted key in the minimum-frequency bucket.
func (p *Policy) evict() {
	b := p.buckets[p.minFreq]
	victim, ok := b.PopFront()
	if !ok {
		return
	}
	if b.Len() == 0 {
		delete(p.buckets, p.minFreq)
	}
	delete(p.freq, victim)
}

func (p *Policy) bucket(f int) *keylist.List {
	b, ok := p.buckets[f]
	if !ok {
		b = keylist.New()
		p.buckets[f] = b
	}
	return b
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
	return len(p.freq)
}
