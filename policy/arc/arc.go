// Package arc implements adaptive replacement cache (ARC) eviction,
// following the Figure 4 pseudocode of Megiddo and Modha.
//
// ARC splits residents into T1 (seen once, recency side) and T2 (seen at
// least twice, frequency side) and remembers recently evicted keys in the
// ghost lists B1 and B2. Hits in the ghost lists steer the adaptive target
// size p of T1: B1 hits grow p (recency is winning), B2 hits shrink it.
package arc

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/keylist"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy = (*Policy)(nil)

// Policy is an ARC instance. A key is in at most one of T1, T2, B1, B2
// at any time, and 0 <= p <= capacity always holds.
type Policy struct {
	capacity int
	t1       *keylist.List
	t2       *keylist.List
	b1       *keylist.List
	b2       *keylist.List
	p        int
	hits     int
	misses   int
}

// New creates an ARC policy with the given capacity.
func New(capacity int) (*Policy, error) {
	if capacity <= 0 {
		return nil, policy.ErrInvalidCapacity
	}
	return &Policy{
		capacity: capacity,
		t1:       keylist.New(),
		t2:       keylist.New(),
		b1:       keylist.New(),
		b2:       keylist.New(),
	}, nil
}

// Access records a reference to key and reports whether it was a hit.
func (p *Policy) Access(key policy.Key) (bool, error) {
	// Any repeat reference to a resident promotes it to T2 MRU.
	if p.t1.Remove(key) {
		p.t2.PushBack(key)
		p.hits++
		return true, nil
	}
	if p.t2.Has(key) {
		p.t2.MoveToBack(key)
		p.hits++
		return true, nil
	}

	p.misses++

	if p.b1.Has(key) {
		p.adaptOnB1Hit()
		p.replace(false)
		p.b1.Remove(key)
		p.t2.PushBack(key)
		return false, nil
	}

	if p.b2.Has(key) {
		p.adaptOnB2Hit()
		p.replace(true)
		p.b2.Remove(key)
		p.t2.PushBack(key)
		return false, nil
	}

	p.ensureSpaceForMiss()
	p.t1.PushBack(key)
	return false, nil
}

// replace evicts one resident into the matching ghost list. inB2 is true
// when the missed key was found in B2, which biases eviction toward T1 at
// the |T1| == p boundary.
func (p *Policy) replace(inB2 bool) {
	if p.t1.Len() > 0 && (p.t1.Len() > p.p || (inB2 && p.t1.Len() == p.p)) {
		old, _ := p.t1.PopFront()
		p.b1.PushBack(old)
		if p.b1.Len() > p.capacity {
			p.b1.PopFront()
		}
		return
	}
	if p.t2.Len() > 0 {
		old, _ := p.t2.PopFront()
		p.b2.PushBack(old)
		if p.b2.Len() > p.capacity {
			p.b2.PopFront()
		}
	}
}

// adaptOnB1Hit grows the T1 target: a B1 hit means a once-seen key was
// evicted too eagerly.
func (p *Policy) adaptOnB1Hit() {
	delta := 1
	if p.b1.Len() > 0 {
		if d := p.b2.Len() / p.b1.Len(); d > delta {
			delta = d
		}
	}
	p.p += delta
	if p.p > p.capacity {
		p.p = p.capacity
	}
}

// adaptOnB2Hit shrinks the T1 target: a B2 hit means a frequent key was
// evicted too eagerly.
func (p *Policy) adaptOnB2Hit() {
	delta := 1
	if p.b2.Len() > 0 {
		if d := p.b1.Len() / p.b2.Len(); d > delta {
			delta = d
		}
	}
	p.p -= delta
	if p.p < 0 {
		p.p = 0
	}
}

// ensureSpaceForMiss makes room before admitting a brand-new key into T1.
func (p *Policy) ensureSpaceForMiss() {
	total := p.t1.Len() + p.b1.Len()
	if total == p.capacity {
		if p.t1.Len() < p.capacity {
			p.b1.PopFront()
			p.replace(false)
		} else {
			// T1 fills the whole cache: evict its LRU directly,
			// without a ghost entry.
			p.t1.PopFront()
		}
		return
	}

	grand := total + p.t2.Len() + p.b2.Len()
	if grand >= p.capacity {
		if grand == 2*p.capacity && p.b2.Len() > 0 {
			p.b2.PopFront()
		}
		p.replace(false)
	}
}

// Stats returns the hit and miss counters plus the adaptive target p.
func (p *Policy) Stats() map[string]int {
	return map[string]int{
		"hits":   p.hits,
		"misses": p.misses,
		"p":      p.p,
	}
}

// Len returns the number of resident keys (T1 plus T2; ghosts excluded).
func (p *Policy) Len() int {
	return p.t1.Len() + p.t2.Len()
}
