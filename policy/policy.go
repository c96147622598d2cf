// Package policy defines the capability contract shared by all cache
// replacement policies.
//
// A Policy holds a fixed number of resident keys and decides which resident
// key to evict when a miss arrives at capacity. Implementations live in the
// child packages (fifo, lru, lfu, arc, twoq, opt) and are selected at
// construction time; see the root capsim package for the named factory.
package policy

import "errors"

// Key identifies a cached page. Keys are opaque to every policy: they are
// compared for equality (and, for deterministic tie-breaking in OPT, by
// value) but never interpreted.
type Key int64

// Sentinel errors for well-defined error conditions.
var (
	// ErrInvalidCapacity indicates a constructor was given a capacity <= 0.
	ErrInvalidCapacity = errors.New("policy: capacity must be a positive integer")

	// ErrNotPrimed indicates an offline policy was accessed before it was
	// given the future trace it requires.
	ErrNotPrimed = errors.New("policy: no future trace primed")
)

// Policy is the contract every replacement algorithm implements.
//
// Policies are single-threaded: Access runs to completion before returning
// and no instance is shared between goroutines. Capacity is fixed at
// construction; counters reset only by constructing a new instance.
type Policy interface {
	// Access records a reference to key and reports whether it was a hit.
	// On a miss the policy admits the key, evicting per its algorithm if
	// it is at capacity.
	Access(key Key) (bool, error)

	// Stats returns algorithm-specific counters, always including
	// "hits" and "misses".
	Stats() map[string]int

	// Len returns the number of resident keys. Ghost entries do not count.
	Len() int
}
