package uevloop

// Engine is the composition root: it wires one Scheduler and one Loop
// to a shared System, and one Relay to the same System's node pool, and
// exposes the two calls the surrounding application is expected to
// drive: Tick from the main foreground context, UpdateTimer from a
// periodic ISR (or, in a hosted build, from Driver).
type Engine struct {
	sys       *System
	scheduler *Scheduler
	loop      *Loop
	relay     *Relay
	logger    Logger

	hooks   *Hooks
	metrics *Metrics
	tracer  *Tracer
}

// New builds an Engine from the given options. Every pool and queue is
// sized once, here; nothing allocates again for the lifetime of the
// Engine.
func New(opts ...Option) *Engine {
	s := defaultSettings()
	for _, o := range opts {
		o(&s)
	}

	sys := NewSystem(s.lock, s.eventsLog2, s.nodesLog2, s.eventQueueLog2, s.scheduleQueueLog2)
	return &Engine{
		sys:       sys,
		scheduler: NewScheduler(sys),
		loop:      NewLoop(sys),
		relay:     NewRelay(sys, s.signalWidth),
		logger:    s.logger,
		hooks:     s.hooks,
		metrics:   s.metrics,
		tracer:    s.tracer,
	}
}

// Scheduler exposes the Engine's timer scheduler.
func (e *Engine) Scheduler() *Scheduler { return e.scheduler }

// Loop exposes the Engine's closure/timer dispatch loop.
func (e *Engine) Loop() *Loop { return e.loop }

// Relay exposes the Engine's signal relay.
func (e *Engine) Relay() *Relay { return e.relay }

// UpdateTimer advances the wall clock. Safe to call from ISR context;
// the underlying Lock brackets the shared state it touches.
func (e *Engine) UpdateTimer(delta uint32) {
	e.scheduler.UpdateTimer(delta)
}

// Tick runs one foreground iteration: merge/collect due timers, then
// drain whatever is ready in the event queue. Call this repeatedly from
// the application's main loop.
func (e *Engine) Tick() int {
	finish := e.startTickSpan()

	e.scheduler.ManageTimers()
	n := e.loop.Run()

	finish(n, e.sys.EventQueueCount())

	if e.metrics != nil {
		e.metrics.recordTick(n, e.sys)
	}
	if e.hooks != nil && n > 0 {
		e.hooks.emit(HookTimerFired, "tick dispatched events")
	}
	return n
}

// EnqueueClosure schedules c to run on the very next Tick.
func (e *Engine) EnqueueClosure(c Closure) bool {
	ok := e.loop.EnqueueClosure(c)
	if !ok {
		e.logger.Warn("closure enqueue dropped: pool or queue exhausted")
		e.notifyQueueFull()
	}
	return ok
}

// RunLater schedules c to run once, delay ticks from now.
func (e *Engine) RunLater(c Closure, delay uint32) (int32, bool) {
	h, ok := e.scheduler.RunLater(c, delay)
	if !ok {
		e.logger.Warn("timer schedule dropped: pool exhausted")
		e.notifyPoolExhausted()
	}
	return h, ok
}

// RunAtIntervals schedules c to run every period ticks.
func (e *Engine) RunAtIntervals(c Closure, period uint32, immediate bool) (int32, bool) {
	h, ok := e.scheduler.RunAtIntervals(c, period, immediate)
	if !ok {
		e.logger.Warn("recurring timer schedule dropped: pool exhausted")
		e.notifyPoolExhausted()
	}
	return h, ok
}

// Emit fans params out to every listener and observer on signalID,
// queuing each still-listening subscriber for the next Tick rather than
// invoking it here.
func (e *Engine) Emit(signalID uint32, params any) int {
	return e.relay.Emit(signalID, params)
}
