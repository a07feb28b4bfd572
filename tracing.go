package uevloop

import (
	"context"
	"strconv"

	"github.com/zoobzio/tracez"
)

// Trace span/tag keys, grounded on the corpus's tracez.Key/tracez.Tag
// const-block convention (zoobzio-pipz's Timeout*Span/Timeout*Tag).
const (
	SpanTick        = tracez.Key("uevloop.tick")
	TagDispatched   = tracez.Tag("uevloop.dispatched")
	TagEventQueue   = tracez.Tag("uevloop.queue_depth")
)

// Tracer wraps a tracez.Tracer, spanning each Engine.Tick.
type Tracer struct {
	t *tracez.Tracer
}

// NewTracer allocates a fresh tracer.
func NewTracer() *Tracer {
	return &Tracer{t: tracez.New()}
}

func (e *Engine) startTickSpan() func(dispatched int, queueDepth uint32) {
	if e.tracer == nil {
		return func(int, uint32) {}
	}
	_, span := e.tracer.t.StartSpan(context.Background(), SpanTick)
	return func(dispatched int, queueDepth uint32) {
		span.SetTag(TagDispatched, strconv.Itoa(dispatched))
		span.SetTag(TagEventQueue, strconv.Itoa(int(queueDepth)))
		span.Finish()
	}
}
