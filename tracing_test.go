package uevloop

import "testing"

func TestEngineTickWithTracerDoesNotPanic(t *testing.T) {
	tracer := NewTracer()
	e := New(WithTracer(tracer))

	e.EnqueueClosure(NewClosure(func(ctx, p any) any { return nil }, nil, nil, nil))
	e.Tick() // must not panic whether or not a tracer is wired in
}

func TestEngineTickWithoutTracerDoesNotPanic(t *testing.T) {
	e := New()
	e.EnqueueClosure(NewClosure(func(ctx, p any) any { return nil }, nil, nil, nil))
	e.Tick()
}
