package uevloop

// Relay is a fixed-width vector of per-signal listener lists, plus one
// observer list attached to every signal. Emit does not invoke listener
// closures itself: it posts each still-listening subscriber's event
// onto the shared event queue, so listeners fire on the next Loop.Run
// alongside every other queued closure and timer, in insertion order.
type Relay struct {
	sys       *System
	signals   []*LinkedList
	observers *LinkedList
}

// NewRelay allocates width listener lists, all drawing nodes from sys's
// shared node pool, plus one observer list.
func NewRelay(sys *System, width uint32) *Relay {
	signals := make([]*LinkedList, width)
	for i := range signals {
		signals[i] = NewLinkedList(sys.nodes)
	}
	return &Relay{
		sys:       sys,
		signals:   signals,
		observers: NewLinkedList(sys.nodes),
	}
}

// Listen registers c against signalID. The listener survives its own
// dispatch and must be removed explicitly with Unlisten. Returns the
// event handle identifying this subscription and false if the event
// pool is exhausted.
func (r *Relay) Listen(signalID uint32, c Closure) (int32, bool) {
	return r.listen(signalID, c, true)
}

// ListenOnce registers c against signalID for exactly one dispatch; the
// subscription is detached automatically the first time it fires on the
// loop.
func (r *Relay) ListenOnce(signalID uint32, c Closure) (int32, bool) {
	return r.listen(signalID, c, false)
}

func (r *Relay) listen(signalID uint32, c Closure, recurring bool) (int32, bool) {
	if signalID >= uint32(len(r.signals)) {
		return poolNone, false
	}
	h, ok := r.sys.AcquireEvent()
	if !ok {
		return poolNone, false
	}
	ev := r.sys.Event(h)
	ev.ConfigSignalListener(c, signalID, recurring)
	list := r.signals[signalID]
	node, ok := list.PushTail(h)
	if !ok {
		r.sys.ReleaseEvent(h)
		return poolNone, false
	}
	ev.SetListNode(list, node)
	return h, true
}

// Observe registers c against every signal (present and future).
// Survives its own dispatch.
func (r *Relay) Observe(c Closure) (int32, bool) {
	return r.observe(c, true)
}

// ObserveOnce registers c against every signal for exactly one dispatch,
// whichever signal fires first.
func (r *Relay) ObserveOnce(c Closure) (int32, bool) {
	return r.observe(c, false)
}

func (r *Relay) observe(c Closure, recurring bool) (int32, bool) {
	h, ok := r.sys.AcquireEvent()
	if !ok {
		return poolNone, false
	}
	ev := r.sys.Event(h)
	ev.ConfigObserver(c, recurring)
	node, ok := r.observers.PushTail(h)
	if !ok {
		r.sys.ReleaseEvent(h)
		return poolNone, false
	}
	ev.SetListNode(r.observers, node)
	return h, true
}

// Emit walks signalID's listener list, then the observer list. Every
// still-listening subscriber has params written into its closure and its
// event posted to the shared event queue for the next Loop.Run to
// dispatch; Emit itself never invokes a closure. Entries already marked
// not-listening (via Unlisten, since their last walk) are detached from
// the list and released here. Returns the number of listeners queued.
func (r *Relay) Emit(signalID uint32, params any) int {
	if signalID >= uint32(len(r.signals)) {
		return 0
	}

	queued := 0
	r.emitList(r.signals[signalID], params, &queued)
	r.emitList(r.observers, params, &queued)
	return queued
}

func (r *Relay) emitList(list *LinkedList, params any, queued *int) {
	type stale struct{ node, handle int32 }
	var removals []stale

	list.ForEach(func(node int32, handle int32) bool {
		ev := r.sys.Event(handle)
		if !ev.listening {
			removals = append(removals, stale{node, handle})
			return true
		}
		ev.closure.params = params
		if r.sys.EnqueueEvent(handle) {
			*queued++
		}
		return true
	})
	for _, s := range removals {
		list.Remove(s.node)
		r.sys.Event(s.handle).Destroy()
		r.sys.ReleaseEvent(s.handle)
	}
}

// Unlisten marks the subscription at handle as no longer listening.
// It does not remove the node from its list or release the event slot
// immediately: the node is detached the next time its signal is emitted
// (by the lazy cleanup in emitList) or the next time the event itself
// reaches the loop (if it was already queued by an Emit that ran before
// this Unlisten — the "unlisten race": the listener does not run, since
// Loop.dispatch checks listening before invoking). Idempotent: returns
// false if handle is not currently listening (already unlistened, fired
// and non-recurring, or foreign).
func (r *Relay) Unlisten(handle int32) bool {
	if handle < 0 || handle >= r.sys.events.Capacity() {
		return false
	}
	ev := r.sys.Event(handle)
	if ev.kind != KindSignalListener && ev.kind != KindObserver {
		return false
	}
	if !ev.listening {
		return false
	}
	ev.listening = false
	return true
}
