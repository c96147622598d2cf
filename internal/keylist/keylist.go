// Package keylist provides an insertion-ordered set of keys with O(1)
// membership, append, removal, and move-to-back.
//
// The list is an intrusive doubly-linked list stored in a flat arena of
// nodes, addressed by index rather than by pointer, with a hash map from key
// to node index. Freed nodes are chained into a free list and reused, so a
// bounded list allocates a bounded arena. One List backs FIFO's queue, LRU's
// recency order, each LFU frequency bucket, ARC's four lists, and 2Q's three
// lists.
package keylist

import "github.com/YouXiangyu/cache-algorithm-simulator/policy"

// none marks the absence of a neighbor or free node.
const none = -1

type node struct {
	key  policy.Key
	prev int
	next int
}

// List is an insertion-ordered set of keys. The zero value is not usable;
// call New.
type List struct {
	nodes []node
	index map[policy.Key]int
	head  int
	tail  int
	free  int // head of the free chain, linked through next
}

// New returns an empty list.
func New() *List {
	return &List{
		index: make(map[policy.Key]int),
		head:  none,
		tail:  none,
		free:  none,
	}
}

// Len returns the number of keys in the list.
func (l *List) Len() int {
	return len(l.index)
}

// Has reports whether key is in the list.
func (l *List) Has(key policy.Key) bool {
	_, ok := l.index[key]
	return ok
}

// PushBack appends key at the back. If key is already present it is moved
// to the back instead.
func (l *List) PushBack(key policy.Key) {
	if _, ok := l.index[key]; ok {
		l.MoveToBack(key)
		return
	}
	i := l.alloc(key)
	l.linkBack(i)
	l.index[key] = i
}

// PopFront removes and returns the front (oldest) key.
// It reports false if the list is empty.
func (l *List) PopFront() (policy.Key, bool) {
	if l.head == none {
		return 0, false
	}
	key := l.nodes[l.head].key
	l.unlink(l.head)
	delete(l.index, key)
	return key, true
}

// Front returns the front (oldest) key without removing it.
// It reports false if the list is empty.
func (l *List) Front() (policy.Key, bool) {
	if l.head == none {
		return 0, false
	}
	return l.nodes[l.head].key, true
}

// Remove deletes key from the list and reports whether it was present.
func (l *List) Remove(key policy.Key) bool {
	i, ok := l.index[key]
	if !ok {
		return false
	}
	l.unlink(i)
	delete(l.index, key)
	return true
}

// MoveToBack moves key to the back (newest position) and reports whether it
// was present.
func (l *List) MoveToBack(key policy.Key) bool {
	i, ok := l.index[key]
	if !ok {
		return false
	}
	if i == l.tail {
		return true
	}
	l.detach(i)
	l.linkBack(i)
	return true
}

// Keys returns the keys in order from front (oldest) to back (newest).
func (l *List) Keys() []policy.Key {
	keys := make([]policy.Key, 0, len(l.index))
	for i := l.head; i != none; i = l.nodes[i].next {
		keys = append(keys, l.nodes[i].key)
	}
	return keys
}

// alloc takes a node from the free chain or grows the arena.
func (l *List) alloc(key policy.Key) int {
	if l.free != none {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = node{key: key, prev: none, next: none}
		return i
	}
	l.nodes = append(l.nodes, node{key: key, prev: none, next: none})
	return len(l.nodes) - 1
}

// linkBack attaches a detached node at the tail.
func (l *List) linkBack(i int) {
	l.nodes[i].prev = l.tail
	l.nodes[i].next = none
	if l.tail != none {
		l.nodes[l.tail].next = i
	} else {
		l.head = i
	}
	l.tail = i
}

// detach splices a node out of the chain without freeing it.
func (l *List) detach(i int) {
	n := l.nodes[i]
	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
}

// unlink detaches a node and returns it to the free chain.
func (l *List) unlink(i int) {
	l.detach(i)
	l.nodes[i].next = l.free
	l.free = i
}
