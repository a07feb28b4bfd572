package uevloop

// llNode is one element of a LinkedList: a payload handle plus the index
// of the next node, both drawn from the same node pool as every other
// list in the system.
type llNode struct {
	payload int32
	next    int32
}

// LinkedList is an intrusive, singly-linked, doubly-terminated list of
// node handles. Nodes are acquired from and released back to a shared
// Pool[llNode]; the list itself holds only head/tail indices and a
// count, so building or tearing down a list never allocates.
type LinkedList struct {
	nodes *Pool[llNode]
	head  int32
	tail  int32
	count uint32
}

// NewLinkedList binds a list to a node pool. Multiple lists (the
// due-time timer list, each signal's listener list) may share one pool.
func NewLinkedList(nodes *Pool[llNode]) *LinkedList {
	return &LinkedList{
		nodes: nodes,
		head:  poolNone,
		tail:  poolNone,
	}
}

// Count returns the number of elements currently linked.
func (l *LinkedList) Count() uint32 {
	return l.count
}

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList) IsEmpty() bool {
	return l.count == 0
}

// PushHead links payload as the new head. Returns false if the node
// pool is exhausted.
func (l *LinkedList) PushHead(payload int32) (int32, bool) {
	n, ok := l.nodes.Acquire()
	if !ok {
		return poolNone, false
	}
	node := l.nodes.Get(n)
	node.payload = payload
	node.next = l.head

	l.head = n
	if l.tail == poolNone {
		l.tail = n
	}
	l.count++
	return n, true
}

// PushTail links payload as the new tail. Returns false if the node
// pool is exhausted.
func (l *LinkedList) PushTail(payload int32) (int32, bool) {
	n, ok := l.nodes.Acquire()
	if !ok {
		return poolNone, false
	}
	node := l.nodes.Get(n)
	node.payload = payload
	node.next = poolNone

	if l.tail == poolNone {
		l.head = n
		l.tail = n
	} else {
		l.nodes.Get(l.tail).next = n
		l.tail = n
	}
	l.count++
	return n, true
}

// PopHead unlinks and returns the head payload, releasing its node back
// to the pool.
func (l *LinkedList) PopHead() (int32, bool) {
	if l.head == poolNone {
		return poolNone, false
	}
	n := l.head
	node := l.nodes.Get(n)
	payload := node.payload

	l.head = node.next
	if l.head == poolNone {
		l.tail = poolNone
	}
	l.count--
	l.nodes.Release(n)
	return payload, true
}

// PopTail unlinks and returns the tail payload, releasing its node back
// to the pool. O(n): the list is singly-linked, so there is no prev
// pointer for the tail and finding its predecessor requires a walk from
// head. The scheduler never calls this (it only ever pops the head of
// its due-time list); it is exposed as a general-purpose list operation
// for callers that need FIFO-from-the-tail semantics.
func (l *LinkedList) PopTail() (int32, bool) {
	if l.tail == poolNone {
		return poolNone, false
	}
	n := l.tail
	payload := l.nodes.Get(n).payload

	if l.head == n {
		l.head = poolNone
		l.tail = poolNone
	} else {
		prev := l.head
		for l.nodes.Get(prev).next != n {
			prev = l.nodes.Get(prev).next
		}
		l.nodes.Get(prev).next = poolNone
		l.tail = prev
	}
	l.count--
	l.nodes.Release(n)
	return payload, true
}

// PeekHead returns the head payload without unlinking it.
func (l *LinkedList) PeekHead() (int32, bool) {
	if l.head == poolNone {
		return poolNone, false
	}
	return l.nodes.Get(l.head).payload, true
}

// Remove unlinks the node at handle n, wherever it sits in the list.
// O(n) — walks from head comparing node handles. Returns false if n is
// not currently linked in this list.
func (l *LinkedList) Remove(n int32) bool {
	var prev int32 = poolNone
	cur := l.head
	for cur != poolNone {
		if cur == n {
			node := l.nodes.Get(cur)
			if prev == poolNone {
				l.head = node.next
			} else {
				l.nodes.Get(prev).next = node.next
			}
			if cur == l.tail {
				l.tail = prev
			}
			l.count--
			l.nodes.Release(cur)
			return true
		}
		prev = cur
		cur = l.nodes.Get(cur).next
	}
	return false
}

// ForEach visits every linked payload head-to-tail, stopping early if
// visitor returns false.
func (l *LinkedList) ForEach(visitor func(node int32, payload int32) bool) {
	cur := l.head
	for cur != poolNone {
		node := l.nodes.Get(cur)
		next := node.next
		if !visitor(cur, node.payload) {
			return
		}
		cur = next
	}
}

// InsertSorted links payload into the list at the position determined
// by before: the node is inserted immediately ahead of the first
// existing element for which before(candidatePayload) reports true, or
// at the tail if no such element exists. Used to keep the timer list
// ordered by due time without a full sort pass on every insertion.
func (l *LinkedList) InsertSorted(payload int32, before func(existingPayload int32) bool) (int32, bool) {
	if l.head == poolNone {
		return l.PushHead(payload)
	}

	var prev int32 = poolNone
	cur := l.head
	for cur != poolNone {
		node := l.nodes.Get(cur)
		if before(node.payload) {
			break
		}
		prev = cur
		cur = node.next
	}

	if prev == poolNone {
		return l.PushHead(payload)
	}
	if cur == poolNone {
		return l.PushTail(payload)
	}

	n, ok := l.nodes.Acquire()
	if !ok {
		return poolNone, false
	}
	newNode := l.nodes.Get(n)
	newNode.payload = payload
	newNode.next = cur

	l.nodes.Get(prev).next = n
	l.count++
	return n, true
}
