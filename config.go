package uevloop

// Option configures an Engine at construction. Modeled on the
// functional-options pattern: each Option mutates a private settings
// struct before the fixed-size pools and queues are allocated, so every
// allocation still happens exactly once, at New.
type Option func(*settings)

type settings struct {
	eventsLog2        uint
	nodesLog2         uint
	eventQueueLog2    uint
	scheduleQueueLog2 uint
	signalWidth       uint32
	lock              Lock
	logger            Logger
	hooks             *Hooks
	metrics           *Metrics
	tracer            *Tracer
}

func defaultSettings() settings {
	return settings{
		eventsLog2:        7, // 128 event slots
		nodesLog2:         7, // 128 list nodes
		eventQueueLog2:    5, // 32 ready-queue slots
		scheduleQueueLog2: 4, // 16 schedule-queue slots
		signalWidth:       16,
		lock:              NoopLock{},
		logger:            NopLogger{},
	}
}

// WithEventCapacity sets the event pool size to 1<<log2. Default 7 (128).
func WithEventCapacity(log2 uint) Option {
	return func(s *settings) { s.eventsLog2 = log2 }
}

// WithNodeCapacity sets the list-node pool size to 1<<log2, shared by
// the timer due-list and every Relay listener list. Default 7 (128).
func WithNodeCapacity(log2 uint) Option {
	return func(s *settings) { s.nodesLog2 = log2 }
}

// WithEventQueueCapacity sets the ready-to-run event queue size to
// 1<<log2. Default 5 (32).
func WithEventQueueCapacity(log2 uint) Option {
	return func(s *settings) { s.eventQueueLog2 = log2 }
}

// WithScheduleQueueCapacity sets the not-yet-merged timer queue size to
// 1<<log2. Default 4 (16).
func WithScheduleQueueCapacity(log2 uint) Option {
	return func(s *settings) { s.scheduleQueueLog2 = log2 }
}

// WithSignalWidth sets the number of distinct signal IDs the Engine's
// Relay can address. Default 16.
func WithSignalWidth(width uint32) Option {
	return func(s *settings) {
		if width > 0 {
			s.signalWidth = width
		}
	}
}

// WithLock injects the critical-section implementation bracketing
// access shared between Tick and UpdateTimer. Default NoopLock.
func WithLock(lock Lock) Option {
	return func(s *settings) {
		if lock != nil {
			s.lock = lock
		}
	}
}

// WithLogger injects a structured logger for Engine lifecycle events
// (pool exhaustion, queue-full drops). Default NopLogger.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks enables the hookz-backed extension points (OnPoolExhausted,
// OnQueueFull, OnTimerFired). Disabled (nil) by default.
func WithHooks(hooks *Hooks) Option {
	return func(s *settings) { s.hooks = hooks }
}

// WithMetrics enables the metricz-backed Engine.Metrics() registry.
// Disabled (nil) by default.
func WithMetrics(metrics *Metrics) Option {
	return func(s *settings) { s.metrics = metrics }
}

// WithTracer enables tracez spans around every Engine.Tick. Disabled
// (nil) by default.
func WithTracer(tracer *Tracer) Option {
	return func(s *settings) { s.tracer = tracer }
}
