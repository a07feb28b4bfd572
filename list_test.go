package uevloop

import "testing"

func TestLinkedListPushPopOrder(t *testing.T) {
	pool := NewPool[llNode](3)
	l := NewLinkedList(pool)

	for _, v := range []int32{1, 2, 3} {
		if _, ok := l.PushTail(v); !ok {
			t.Fatalf("PushTail(%d) failed", v)
		}
	}
	if l.Count() != 3 {
		t.Fatalf("expected count 3, got %d", l.Count())
	}

	for _, want := range []int32{1, 2, 3} {
		got, ok := l.PopHead()
		if !ok || got != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, got, ok)
		}
	}
	if !l.IsEmpty() {
		t.Fatal("expected list empty after draining")
	}
}

func TestLinkedListPushHead(t *testing.T) {
	pool := NewPool[llNode](2)
	l := NewLinkedList(pool)

	l.PushHead(1)
	l.PushHead(2)
	l.PushHead(3)

	var got []int32
	l.ForEach(func(_ int32, payload int32) bool {
		got = append(got, payload)
		return true
	})
	want := []int32{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: want %d got %d", i, want[i], got[i])
		}
	}
}

func TestLinkedListRemoveMiddleHeadTail(t *testing.T) {
	pool := NewPool[llNode](3)
	l := NewLinkedList(pool)

	n1, _ := l.PushTail(1)
	n2, _ := l.PushTail(2)
	n3, _ := l.PushTail(3)

	if !l.Remove(n2) {
		t.Fatal("remove middle failed")
	}
	if l.Count() != 2 {
		t.Fatalf("expected count 2, got %d", l.Count())
	}

	if !l.Remove(n1) {
		t.Fatal("remove head failed")
	}
	if !l.Remove(n3) {
		t.Fatal("remove tail failed")
	}
	if !l.IsEmpty() {
		t.Fatal("expected list empty")
	}
	if l.Remove(n3) {
		t.Fatal("removing an already-removed node should fail")
	}
}

func TestLinkedListInsertSortedMaintainsOrder(t *testing.T) {
	pool := NewPool[llNode](4)
	l := NewLinkedList(pool)

	values := []int32{5, 1, 4, 2, 3}
	for _, v := range values {
		vv := v
		_, ok := l.InsertSorted(vv, func(existing int32) bool {
			return existing > vv
		})
		if !ok {
			t.Fatalf("InsertSorted(%d) failed", v)
		}
	}

	var got []int32
	l.ForEach(func(_ int32, payload int32) bool {
		got = append(got, payload)
		return true
	})
	want := []int32{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: want %d got %d (full=%v)", i, want[i], got[i], got)
		}
	}
}

func TestLinkedListPopTail(t *testing.T) {
	pool := NewPool[llNode](3)
	l := NewLinkedList(pool)

	for _, v := range []int32{1, 2, 3} {
		if _, ok := l.PushTail(v); !ok {
			t.Fatalf("PushTail(%d) failed", v)
		}
	}

	for _, want := range []int32{3, 2, 1} {
		got, ok := l.PopTail()
		if !ok || got != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, got, ok)
		}
	}
	if !l.IsEmpty() {
		t.Fatal("expected list empty after draining from the tail")
	}
	if _, ok := l.PopTail(); ok {
		t.Fatal("expected PopTail on empty list to fail")
	}
}

func TestLinkedListPopTailSingleElement(t *testing.T) {
	pool := NewPool[llNode](2)
	l := NewLinkedList(pool)

	l.PushTail(9)
	got, ok := l.PopTail()
	if !ok || got != 9 {
		t.Fatalf("expected 9, got %d (ok=%v)", got, ok)
	}
	if l.head != poolNone || l.tail != poolNone {
		t.Fatal("expected head and tail reset to poolNone")
	}
}

func TestLinkedListExhaustedPool(t *testing.T) {
	pool := NewPool[llNode](0) // capacity 1
	l := NewLinkedList(pool)

	if _, ok := l.PushTail(1); !ok {
		t.Fatal("first push should succeed")
	}
	if _, ok := l.PushTail(2); ok {
		t.Fatal("second push should fail: node pool exhausted")
	}
}
