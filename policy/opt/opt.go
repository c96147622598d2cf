// Package opt implements Belady's optimal offline replacement policy.
//
// OPT needs the complete future trace before simulation: Prime (or
// NewPrimed) precomputes, per key, the queue of its future occurrence
// indices. On a miss at capacity it evicts the resident whose next
// occurrence is farthest away; residents that never occur again are evicted
// immediately, ties among them broken by lowest key so eviction never
// depends on map iteration order. Its hit count is an upper bound for every
// online policy on the same trace and capacity.
package opt

import (
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// Compile-time check that Policy implements policy.Policy.
var _ policy.Policy = (*Policy)(nil)

// Policy is an OPT instance. Access returns policy.ErrNotPrimed until a
// trace has been supplied; the caller may Prime and retry.
type Policy struct {
	capacity int
	primed   bool
	future   map[policy.Key][]int
	resident map[policy.Key]struct{}
	step     int
	hits     int
	misses   int
}

// New creates an unprimed OPT policy. It must be primed with the full
// trace before the first Access.
func New(capacity int) (*Policy, error) {
	if capacity <= 0 {
		return nil, policy.ErrInvalidCapacity
	}
	return &Policy{
		capacity: capacity,
		future:   make(map[policy.Key][]int),
		resident: make(map[policy.Key]struct{}),
	}, nil
}

// NewPrimed creates an OPT policy already primed with trace.
func NewPrimed(capacity int, trace []policy.Key) (*Policy, error) {
	p, err := New(capacity)
	if err != nil {
		return nil, err
	}
	p.Prime(trace)
	return p, nil
}

// Prime loads the full future trace, replacing any previous one, and
// resets the step cursor to the start of the trace. Cache contents and
// counters are unaffected.
func (p *Policy) Prime(trace []policy.Key) {
	p.future = make(map[policy.Key][]int)
	for i, key := range trace {
		p.future[key] = append(p.future[key], i)
	}
	p.step = 0
	p.primed = true
}

// Access records a reference to key and reports whether it was a hit.
// Accesses must arrive in trace order.
func (p *Policy) Access(key policy.Key) (bool, error) {
	if !p.primed {
		return false, policy.ErrNotPrimed
	}

	// The occurrence at the current step has just happened.
	if q := p.future[key]; len(q) > 0 && q[0] == p.step {
		p.future[key] = q[1:]
	}

	if _, ok := p.resident[key]; ok {
		p.hits++
		p.step++
		return true, nil
	}

	p.misses++
	if len(p.resident) >= p.capacity {
		delete(p.resident, p.victim())
	}
	p.resident[key] = struct{}{}
	p.step++
	return false, nil
}

// victim picks the resident to evict: the lowest key with no future
// occurrence if any exists, otherwise the key whose next occurrence index
// is farthest away. Finite next-occurrence indices are unique, so no
// further tie-break is needed.
func (p *Policy) victim() policy.Key {
	var (
		victim   policy.Key
		next     = -1
		noFuture bool
	)
	for key := range p.resident {
		q := p.future[key]
		if len(q) == 0 {
			if !noFuture || key < victim {
				victim = key
				noFuture = true
			}
			continue
		}
		if noFuture {
			continue
		}
		if q[0] > next {
			victim = key
			next = q[0]
		}
	}
	return victim
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
	return len(p.resident)
}
