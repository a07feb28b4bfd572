package uevloop

// Kind discriminates the four event variants the loop dispatches.
// Event is a tagged struct rather than an interface sum type: Pool[T]
// requires a fixed-size value type in a flat backing array, and an
// interface variant would box each event on the heap.
type Kind uint8

const (
	KindClosure Kind = iota
	KindTimer
	KindSignalListener
	KindObserver
)

// Event is one pooled slot's worth of scheduled work. Every field is
// always present in the struct layout; only the fields relevant to Kind
// are meaningful at any given time.
type Event struct {
	kind Kind

	closure Closure

	// TIMER fields.
	dueTime    uint32
	period     uint32
	repeating  bool
	immediate  bool
	cancelled  bool

	// SIGNAL_LISTENER / OBSERVER fields. list/node identify where this
	// event's subscription lives (a Relay signal list or its observer
	// list) so the loop can detach it on a non-recurring fire without
	// needing to know which Relay owns it.
	signalID  uint32
	recurring bool
	listening bool
	list      *LinkedList
	node      int32
}

// ConfigClosure initializes e as a one-shot CLOSURE event.
func (e *Event) ConfigClosure(c Closure) {
	e.kind = KindClosure
	e.closure = c
}

// ConfigTimer initializes e as a TIMER event. dueTime is an absolute
// tick value (wraparound at uint32 overflow is not handled: due-time
// comparison is a plain >=, so a timer scheduled across a wraparound
// boundary fires early rather than being silently lost — see the design
// notes on timer wraparound).
func (e *Event) ConfigTimer(c Closure, dueTime, period uint32, repeating, immediate bool) {
	e.kind = KindTimer
	e.closure = c
	e.dueTime = dueTime
	e.period = period
	e.repeating = repeating
	e.immediate = immediate
	e.cancelled = false
}

// ConfigSignalListener initializes e as a SIGNAL_LISTENER event bound to
// signalID. recurring controls whether the listener survives its own
// first dispatch (Listen) or is detached after firing once (ListenOnce).
// The relay's listener list is recorded separately via SetListNode, once
// the subscription has been linked into it.
func (e *Event) ConfigSignalListener(c Closure, signalID uint32, recurring bool) {
	e.kind = KindSignalListener
	e.closure = c
	e.signalID = signalID
	e.recurring = recurring
	e.listening = true
	e.list = nil
	e.node = poolNone
}

// ConfigObserver initializes e as an OBSERVER event: a listener attached
// to every signal rather than one signalID.
func (e *Event) ConfigObserver(c Closure, recurring bool) {
	e.kind = KindObserver
	e.closure = c
	e.recurring = recurring
	e.listening = true
	e.list = nil
	e.node = poolNone
}

// SetListNode records where e's subscription is linked: list is the
// Relay list holding it (a signal list or the observer list), node is
// the handle PushTail returned for it. Set once, after linking, so the
// loop can detach e from the correct list on a non-recurring fire.
func (e *Event) SetListNode(list *LinkedList, node int32) {
	e.list = list
	e.node = node
}

// detachFromList unlinks e from the Relay list it was registered in, if
// any. Safe to call more than once: Remove is a no-op once the node is
// already gone.
func (e *Event) detachFromList() {
	if e.list != nil {
		e.list.Remove(e.node)
	}
}

// Kind reports which variant e currently holds.
func (e *Event) Kind() Kind {
	return e.kind
}

// Cancel marks a TIMER event so ManageTimers will drop it instead of
// firing it, without requiring it be found and removed from the due
// list immediately.
func (e *Event) Cancel() {
	e.cancelled = true
}

// Destroy runs the underlying closure's destructor and clears the
// listening flag. It does not invoke the closure.
func (e *Event) Destroy() {
	e.closure.Destroy()
	e.listening = false
}
