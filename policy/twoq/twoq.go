// Package twoq implements the 2Q cache replacement policy.
//
// 2Q splits the cache into a FIFO admission queue A1in and an LRU main area
// Am, with a ghost FIFO A1out remembering keys evicted from A1in. A key
// enters Am only by missing while in A1out: a single re-reference while
// still resident in A1in is not a promotion signal. This filters one-shot
// scans out of the main area.
package twoq

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/keylist"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// DefaultSizeOut is the ghost list capacity used when none is requested.
const DefaultSizeOut = 16

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy = (*Policy)(nil)

// Policy is a 2Q instance. A key is in at most one of A1in, A1out, Am at
// any time, and A1in plus Am never exceed the overall capacity.
type Policy struct {
	capacity int
	sizeIn   int
	sizeOut  int
	sizeAm   int
	a1in     *keylist.List
	a1out    *keylist.List
	am       *keylist.List
	hits     int
	misses   int
}

// New creates a 2Q policy with default partition sizes: A1in gets half the
// capacity and A1out remembers DefaultSizeOut ghosts.
func New(capacity int) (*Policy, error) {
	return NewWithSizes(capacity, 0, 0)
}

// NewWithSizes creates a 2Q policy with explicit partition sizes, as used
// by offline tuning. sizeIn <= 0 selects the default of half the capacity;
// sizeOut <= 0 selects DefaultSizeOut. sizeIn is clamped so that both A1in
// and (for capacity >= 2) Am hold at least one key.
func NewWithSizes(capacity, sizeIn, sizeOut int) (*Policy, error) {
	if capacity <= 0 {
		return nil, policy.ErrInvalidCapacity
	}

	if sizeIn <= 0 {
		sizeIn = capacity / 2
	}
	maxIn := capacity - 1
	if maxIn < 1 {
		maxIn = 1
	}
	if sizeIn < 1 {
		sizeIn = 1
	}
	if sizeIn > maxIn {
		sizeIn = maxIn
	}

	if sizeOut <= 0 {
		sizeOut = DefaultSizeOut
	}

	return &Policy{
		capacity: capacity,
		sizeIn:   sizeIn,
		sizeOut:  sizeOut,
		sizeAm:   capacity - sizeIn,
		a1in:     keylist.New(),
		a1out:    keylist.New(),
		am:       keylist.New(),
	}, nil
}

// SizeIn returns the A1in partition capacity.
func (p *Policy) SizeIn() int { return p.sizeIn }

// SizeOut returns the A1out ghost capacity.
func (p *Policy) SizeOut() int { return p.sizeOut }

// Access records a reference to key and reports whether it was a hit.
func (p *Policy) Access(key policy.Key) (bool, error) {
	if p.am.Has(key) {
		p.hits++
		p.am.MoveToBack(key)
		return true, nil
	}

	// Resident in the admission queue: a hit, but deliberately no
	// reordering and no promotion.
	if p.a1in.Has(key) {
		p.hits++
		return true, nil
	}

	p.misses++

	// Ghost hit: the only path into Am.
	if p.a1out.Has(key) {
		if p.am.Len() >= p.sizeAm {
			p.evictFromAm()
		}
		p.a1out.Remove(key)
		p.am.PushBack(key)
		return false, nil
	}

	if p.a1in.Len() >= p.sizeIn {
		p.evictFromA1in()
	} else if p.Len() >= p.capacity {
		// Reachable only when sizeAm is 0 (capacity 1) and Am holds the
		// sole resident: A1in has room but the cache does not.
		p.evictFromAm()
	}
	p.a1in.PushBack(key)
	return false, nil
}

// evictFromA1in moves the A1in head into the ghost list, trimming the
// ghost list when it overflows.
func (p *Policy) evictFromA1in() {
	victim, ok := p.a1in.PopFront()
	if !ok {
		return
	}
	p.a1out.PushBack(victim)
	if p.a1out.Len() > p.sizeOut {
		p.a1out.PopFront()
	}
}

// evictFromAm drops the Am LRU. When Am is empty (possible only in the
// degenerate capacity-1 configuration where sizeAm is 0) it frees space by
// ghosting the A1in head instead, so residents never exceed capacity.
func (p *Policy) evictFromAm() {
	if _, ok := p.am.PopFront(); ok {
		return
	}
	p.evictFromA1in()
}

// Stats returns the hit and miss counters plus the three list lengths.
func (p *Policy) Stats() map[string]int {
	return map[string]int{
		"hits":   p.hits,
		"misses": p.misses,
		"a1in":   p.a1in.Len(),
		"a1out":  p.a1out.Len(),
		"am":     p.am.Len(),
	}
}

// Len returns the number of resident keys (A1in plus Am; ghosts excluded).
func (p *Policy) Len() int {
	return p.a1in.Len() + p.am.Len()
}
