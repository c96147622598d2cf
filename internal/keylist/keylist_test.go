package keylist

import (
	"testing"

	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

func keysEqual(got, want []policy.Key) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestPushBackOrder(t *testing.T) {
	l := New()
	for _, k := range []policy.Key{1, 2, 3} {
		l.PushBack(k)
	}

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if got := l.Keys(); !keysEqual(got, []policy.Key{1, 2, 3}) {
		t.Errorf("Keys() = %v, want [1 2 3]", got)
	}
}

func TestPushBackExistingMovesToBack(t *testing.T) {
	l := New()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(1)

	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if got := l.Keys(); !keysEqual(got, []policy.Key{2, 1}) {
		t.Errorf("Keys() = %v, want [2 1]", got)
	}
}

func TestPopFront(t *testing.T) {
	l := New()
	l.PushBack(10)
	l.PushBack(20)

	k, ok := l.PopFront()
	if !ok || k != 10 {
		t.Errorf("PopFront() = %d, %v, want 10, true", k, ok)
	}
	k, ok = l.PopFront()
	if !ok || k != 20 {
		t.Errorf("PopFront() = %d, %v, want 20, true", k, ok)
	}
	if _, ok = l.PopFront(); ok {
		t.Error("PopFront() on empty list reported ok")
	}
}

func TestMoveToBack(t *testing.T) {
	l := New()
	for _, k := range []policy.Key{1, 2, 3} {
		l.PushBack(k)
	}

	if !l.MoveToBack(1) {
		t.Fatal("MoveToBack(1) = false, want true")
	}
	if got := l.Keys(); !keysEqual(got, []policy.Key{2, 3, 1}) {
		t.Errorf("Keys() = %v, want [2 3 1]", got)
	}

	// Moving the tail is a no-op but still succeeds.
	if !l.MoveToBack(1) {
		t.Error("MoveToBack(tail) = false, want true")
	}
	if l.MoveToBack(99) {
		t.Error("MoveToBack(absent) = true, want false")
	}
}

func TestRemove(t *testing.T) {
	l := New()
	for _, k := range []policy.Key{1, 2, 3} {
		l.PushBack(k)
	}

	if !l.Remove(2) {
		t.Fatal("Remove(2) = false, want true")
	}
	if l.Has(2) {
		t.Error("Has(2) = true after Remove")
	}
	if got := l.Keys(); !keysEqual(got, []policy.Key{1, 3}) {
		t.Errorf("Keys() = %v, want [1 3]", got)
	}
	if l.Remove(2) {
		t.Error("Remove(2) twice = true, want false")
	}
}

func TestArenaReuse(t *testing.T) {
	l := New()
	// Churn through many more keys than stay resident; the arena should
	// stay bounded by the high-water mark of Len.
	for i := 0; i < 1000; i++ {
		l.PushBack(policy.Key(i))
		if l.Len() > 4 {
			l.PopFront()
		}
	}

	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	if len(l.nodes) > 5 {
		t.Errorf("arena grew to %d nodes, want <= 5", len(l.nodes))
	}
	if got := l.Keys(); !keysEqual(got, []policy.Key{996, 997, 998, 999}) {
		t.Errorf("Keys() = %v, want [996 997 998 999]", got)
	}
}

func TestFront(t *testing.T) {
	l := New()
	if _, ok := l.Front(); ok {
		t.Error("Front() on empty list reported ok")
	}
	l.PushBack(7)
	l.PushBack(8)
	if k, ok := l.Front(); !ok || k != 7 {
		t.Errorf("Front() = %d, %v, want 7, true", k, ok)
	}
	if l.Len() != 2 {
		t.Errorf("Front() changed Len() to %d", l.Len())
	}
}
