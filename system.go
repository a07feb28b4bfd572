package uevloop

// System owns every piece of state shared between the Scheduler, the
// Loop and the Relay: the two fixed pools (events, list nodes) and the
// two fixed queues (pending events, newly scheduled timers), plus the
// Lock bracketing any access to them from a context other than the
// current Tick. Scheduler, Loop and Relay all hold a reference to the
// same *System rather than owning their own copies.
type System struct {
	lock Lock

	events *Pool[Event]
	nodes  *Pool[llNode]

	eventQueue    *CircularQueue[int32]
	scheduleQueue *CircularQueue[int32]
}

// NewSystem builds the shared pools and queues. eventsLog2/nodesLog2 size
// the two pools; eventQueueLog2/scheduleQueueLog2 size the event queue
// and the schedule queue independently — see config.go.
func NewSystem(lock Lock, eventsLog2, nodesLog2, eventQueueLog2, scheduleQueueLog2 uint) *System {
	if lock == nil {
		lock = NoopLock{}
	}
	return &System{
		lock:          lock,
		events:        NewPool[Event](eventsLog2),
		nodes:         NewPool[llNode](nodesLog2),
		eventQueue:    NewCircularQueue[int32](eventQueueLog2),
		scheduleQueue: NewCircularQueue[int32](scheduleQueueLog2),
	}
}

// Event returns a pointer to the pooled event at handle.
func (s *System) Event(handle int32) *Event {
	return s.events.Get(handle)
}

// AcquireEvent reserves a pooled event slot, under the lock.
func (s *System) AcquireEvent() (int32, bool) {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.events.Acquire()
}

// ReleaseEvent returns a pooled event slot, under the lock.
func (s *System) ReleaseEvent(handle int32) bool {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.events.Release(handle)
}

// EnqueueEvent pushes handle onto the ready-to-run event queue, under
// the lock.
func (s *System) EnqueueEvent(handle int32) bool {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.eventQueue.Push(handle)
}

// DequeueEvent pops the next ready event handle, under the lock.
func (s *System) DequeueEvent() (int32, bool) {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.eventQueue.Pop()
}

// EventQueueCount reports the current ready-queue depth, under the lock.
func (s *System) EventQueueCount() uint32 {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.eventQueue.Count()
}

// EnqueueSchedule pushes handle onto the not-yet-merged schedule queue,
// under the lock. Called by RunLater/RunAtIntervals, potentially from
// ISR context.
func (s *System) EnqueueSchedule(handle int32) bool {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.scheduleQueue.Push(handle)
}

// DequeueSchedule pops the next not-yet-merged schedule handle, under
// the lock. Called by ManageTimers from foreground context.
func (s *System) DequeueSchedule() (int32, bool) {
	s.lock.Enter()
	defer s.lock.Exit()
	return s.scheduleQueue.Pop()
}
