package uevloop

// Scheduler owns the wall-clock tick counter and the due-time-sorted
// timer list. UpdateTimer simulates the periodic ISR that advances the
// clock; RunLater/RunAtIntervals enqueue new timers (safe to call from
// that same ISR context); ManageTimers, called once per foreground Tick,
// merges newly scheduled timers into the sorted list and moves every
// timer whose due time has arrived into the system's event queue.
type Scheduler struct {
	sys     *System
	timer   uint32
	dueList *LinkedList
}

// NewScheduler binds a Scheduler to sys's shared pools/queues. The due
// list draws its nodes from sys's node pool, the same pool every
// Relay's listener lists draw from.
func NewScheduler(sys *System) *Scheduler {
	return &Scheduler{
		sys:     sys,
		dueList: NewLinkedList(sys.nodes),
	}
}

// UpdateTimer advances the wall clock by delta ticks. Comparison against
// due times is a plain unsigned >=; wraparound past the uint32 range is
// not handled (see the design notes on timer wraparound) — a timer
// scheduled across a wraparound boundary fires early rather than being
// silently dropped.
func (s *Scheduler) UpdateTimer(delta uint32) {
	s.sys.lock.Enter()
	s.timer += delta
	s.sys.lock.Exit()
}

// Now returns the current tick count.
func (s *Scheduler) Now() uint32 {
	s.sys.lock.Enter()
	defer s.sys.lock.Exit()
	return s.timer
}

// RunLater schedules c to run once, delay ticks from now. Returns the
// event handle (so the caller may Cancel it before it fires) and false
// if the event pool is exhausted.
func (s *Scheduler) RunLater(c Closure, delay uint32) (int32, bool) {
	return s.schedule(c, delay, 0, false, false)
}

// RunAtIntervals schedules c to run every period ticks. If immediate is
// true the first firing happens on the very next ManageTimers call
// (due time == now); otherwise the first firing is period ticks out,
// same as every subsequent one.
func (s *Scheduler) RunAtIntervals(c Closure, period uint32, immediate bool) (int32, bool) {
	delay := period
	if immediate {
		delay = 0
	}
	return s.schedule(c, delay, period, true, immediate)
}

func (s *Scheduler) schedule(c Closure, delay, period uint32, repeating, immediate bool) (int32, bool) {
	h, ok := s.sys.AcquireEvent()
	if !ok {
		return poolNone, false
	}
	now := s.Now()
	s.sys.Event(h).ConfigTimer(c, now+delay, period, repeating, immediate)

	if !s.sys.EnqueueSchedule(h) {
		s.sys.ReleaseEvent(h)
		return poolNone, false
	}
	return h, true
}

// Cancel marks the timer at handle as cancelled. A cancelled timer is
// dropped the next time ManageTimers encounters it (either still in the
// schedule queue or already merged into the due list), instead of being
// fired.
func (s *Scheduler) Cancel(handle int32) {
	s.sys.Event(handle).Cancel()
}

// ManageTimers merges every pending scheduleQueue entry into the
// due-time-sorted list, then moves every timer whose due time has
// arrived into the event queue, rescheduling repeating ones for their
// next period. Call once per Tick, from foreground context only.
func (s *Scheduler) ManageTimers() {
	for {
		h, ok := s.sys.DequeueSchedule()
		if !ok {
			break
		}
		ev := s.sys.Event(h)
		if ev.cancelled {
			ev.Destroy()
			s.sys.ReleaseEvent(h)
			continue
		}
		due := ev.dueTime
		s.dueList.InsertSorted(h, func(existing int32) bool {
			return s.sys.Event(existing).dueTime > due
		})
	}

	now := s.Now()
	for {
		headPayload, ok := s.dueList.PeekHead()
		if !ok {
			break
		}
		ev := s.sys.Event(headPayload)
		if ev.dueTime > now {
			break
		}
		s.dueList.PopHead()

		if ev.cancelled {
			ev.Destroy()
			s.sys.ReleaseEvent(headPayload)
			continue
		}

		// Event queue full: drop this firing rather than block the
		// ISR-driven timer merge.
		queued := s.sys.EnqueueEvent(headPayload)
		if !queued && !ev.repeating {
			ev.Destroy()
			s.sys.ReleaseEvent(headPayload)
			continue
		}

		if ev.repeating {
			nextDue := ev.dueTime + ev.period
			h2, ok := s.sys.AcquireEvent()
			if ok {
				s.sys.Event(h2).ConfigTimer(ev.closure, nextDue, ev.period, true, false)
				if !s.sys.EnqueueSchedule(h2) {
					s.sys.ReleaseEvent(h2)
				}
			}
			if !queued {
				// The dropped firing's slot is released without Destroy:
				// the next occurrence shares its closure.
				s.sys.ReleaseEvent(headPayload)
			}
		}
	}
}
