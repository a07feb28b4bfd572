package uevloop

// Loop drains the system's ready-event queue once per Tick. CLOSURE and
// TIMER events reach the queue via EnqueueClosure and the scheduler;
// SIGNAL_LISTENER and OBSERVER events reach it via a Relay's Emit, which
// posts a still-listening subscriber's event here rather than invoking
// it, so listener dispatch shares this run-to-completion queue with
// everything else.
type Loop struct {
	sys *System
}

// NewLoop binds a Loop to sys's shared event pool and event queue.
func NewLoop(sys *System) *Loop {
	return &Loop{sys: sys}
}

// EnqueueClosure acquires an event slot, configures it as a one-shot
// CLOSURE, and pushes it onto the ready queue. Returns false if the
// event pool or the ready queue is exhausted.
func (l *Loop) EnqueueClosure(c Closure) bool {
	h, ok := l.sys.AcquireEvent()
	if !ok {
		return false
	}
	l.sys.Event(h).ConfigClosure(c)
	if !l.sys.EnqueueEvent(h) {
		l.sys.ReleaseEvent(h)
		return false
	}
	return true
}

// Run drains exactly as many events as were queued at the moment Run
// was called — a closure that enqueues another closure from within its
// own invocation does not extend this Tick's drain, so one runaway
// self-resubmitting closure cannot starve the rest of the system.
func (l *Loop) Run() int {
	n := l.sys.EventQueueCount()
	dispatched := 0
	for i := uint32(0); i < n; i++ {
		h, ok := l.sys.DequeueEvent()
		if !ok {
			break
		}
		l.dispatch(h)
		dispatched++
	}
	return dispatched
}

func (l *Loop) dispatch(h int32) {
	ev := l.sys.Event(h)
	switch ev.kind {
	case KindClosure:
		ev.closure.Invoke()
		ev.Destroy()
		l.sys.ReleaseEvent(h)
	case KindTimer:
		if ev.cancelled {
			ev.Destroy()
			l.sys.ReleaseEvent(h)
			return
		}
		ev.closure.Invoke()
		if ev.repeating {
			// The next occurrence was already scheduled with its own
			// event slot, sharing this closure's ctx/params; running
			// the destructor here would free state the next occurrence
			// still needs.
			l.sys.ReleaseEvent(h)
		} else {
			ev.Destroy()
			l.sys.ReleaseEvent(h)
		}
	case KindSignalListener, KindObserver:
		if !ev.listening {
			// Unlistened after Emit queued it but before it fired.
			ev.detachFromList()
			ev.Destroy()
			l.sys.ReleaseEvent(h)
			return
		}
		ev.closure.Invoke()
		if !ev.recurring {
			ev.listening = false
			ev.detachFromList()
			ev.Destroy()
			l.sys.ReleaseEvent(h)
		}
		// Recurring: leave alive, still linked in the relay's list.
	}
}
