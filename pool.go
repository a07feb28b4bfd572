package uevloop

// poolNone is the sentinel handle returned by Pool.Acquire when the pool
// is exhausted, and the value stored in handle fields that mean "no
// object."
const poolNone int32 = -1

// Pool is a fixed array of uniformly-sized slots, with free slots tracked
// by a CircularQueue of slot indices. Acquire/Release never allocate:
// the backing array and free queue are both sized once, at construction.
//
// Slot contents are not cleared on acquire or release; the caller is
// responsible for initializing a slot after Acquire and may leave stale
// data behind after Release (the next Acquire of that slot will
// overwrite it before use).
type Pool[T any] struct {
	slots []T
	free  *CircularQueue[int32]
}

// NewPool allocates 1<<sizeLog2 slots and populates the free queue with
// every slot index, in slot order.
func NewPool[T any](sizeLog2 uint) *Pool[T] {
	size := int32(1) << sizeLog2
	p := &Pool[T]{
		slots: make([]T, size),
		free:  NewCircularQueue[int32](sizeLog2),
	}
	for i := int32(0); i < size; i++ {
		p.free.Push(i)
	}
	return p
}

// Acquire pops a slot index from the free queue. Returns (poolNone,
// false) when the pool is depleted.
func (p *Pool[T]) Acquire() (int32, bool) {
	h, ok := p.free.Pop()
	if !ok {
		return poolNone, false
	}
	return h, true
}

// Release returns a slot index to the free queue. Returns false only if
// the free queue is already full, which indicates a double-release or a
// handle foreign to this pool; the caller's double-release did not
// corrupt pool state because Release checks capacity before pushing.
func (p *Pool[T]) Release(handle int32) bool {
	return p.free.Push(handle)
}

// Get returns a pointer to the slot at handle, for reading or writing
// slot contents. The caller must only dereference handles it currently
// owns (i.e. handles not sitting in the free queue).
func (p *Pool[T]) Get(handle int32) *T {
	return &p.slots[handle]
}

// IsEmpty reports pool exhaustion: true when no slots remain free.
func (p *Pool[T]) IsEmpty() bool {
	return p.free.IsEmpty()
}

// Capacity returns the fixed number of slots in the pool.
func (p *Pool[T]) Capacity() int32 {
	return int32(len(p.slots))
}

// Outstanding returns the number of slots currently acquired (not in the
// free queue).
func (p *Pool[T]) Outstanding() int32 {
	return int32(len(p.slots)) - int32(p.free.Count())
}
