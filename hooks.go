package uevloop

import (
	"context"
	"time"

	"github.com/zoobzio/hookz"
)

// Hook event keys, grounded on the corpus's hookz.Key const-block
// convention (e.g. zoobzio-pipz's timeout.timeout / timeout.near_timeout).
const (
	HookPoolExhausted = hookz.Key("uevloop.pool_exhausted")
	HookQueueFull     = hookz.Key("uevloop.queue_full")
	HookTimerFired    = hookz.Key("uevloop.timer_fired")
)

// HookEvent is the payload delivered to every Engine hook handler.
type HookEvent struct {
	Detail    string
	Timestamp time.Time
}

// Hooks is the Engine's extension-point registry: external code can
// subscribe to pool exhaustion, dropped-due-to-full-queue events, and
// timer firings without the core needing to know the subscriber exists.
type Hooks struct {
	h *hookz.Hooks[HookEvent]
}

// NewHooks allocates a fresh hook registry.
func NewHooks() *Hooks {
	return &Hooks{h: hookz.New[HookEvent]()}
}

// OnPoolExhausted registers handler to run whenever Engine.RunLater or
// Engine.RunAtIntervals fails to schedule a timer, whether the event pool
// is exhausted or the schedule queue is full. Other failures (node pool
// exhaustion, Engine.EnqueueClosure, Relay subscriptions) do not run it.
func (h *Hooks) OnPoolExhausted(handler func(context.Context, HookEvent) error) error {
	_, err := h.h.Hook(HookPoolExhausted, handler)
	return err
}

// OnQueueFull registers handler to run whenever Engine.EnqueueClosure
// fails, whether the ready queue is full or the event pool is exhausted.
// A full schedule queue during Engine.RunLater/RunAtIntervals runs the
// OnPoolExhausted handlers instead.
func (h *Hooks) OnQueueFull(handler func(context.Context, HookEvent) error) error {
	_, err := h.h.Hook(HookQueueFull, handler)
	return err
}

// OnTimerFired registers handler to run once per Engine.Tick that
// dispatched at least one event (closures and listeners count as well as
// timers); it is not run once per individual timer.
func (h *Hooks) OnTimerFired(handler func(context.Context, HookEvent) error) error {
	_, err := h.h.Hook(HookTimerFired, handler)
	return err
}

func (h *Hooks) emit(key hookz.Key, detail string) {
	_ = h.h.Emit(context.Background(), key, HookEvent{Detail: detail, Timestamp: time.Now()}) //nolint:errcheck
}

// Close releases the hook registry's internal resources.
func (h *Hooks) Close() {
	h.h.Close()
}

func (e *Engine) notifyPoolExhausted() {
	if e.hooks != nil {
		e.hooks.emit(HookPoolExhausted, "pool exhausted")
	}
}

func (e *Engine) notifyQueueFull() {
	if e.hooks != nil {
		e.hooks.emit(HookQueueFull, "queue full")
	}
}
