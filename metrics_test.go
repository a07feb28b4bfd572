package uevloop

import "testing"

func TestEngineMetricsRecordedOnTick(t *testing.T) {
	metrics := NewMetrics()
	e := New(WithMetrics(metrics))

	e.EnqueueClosure(NewClosure(func(ctx, p any) any { return nil }, nil, nil, nil))
	e.EnqueueClosure(NewClosure(func(ctx, p any) any { return nil }, nil, nil, nil))
	e.Tick()

	if e.Metrics() != metrics {
		t.Fatal("expected Engine.Metrics() to return the configured registry")
	}

	reg := metrics.Registry()
	if got := reg.Counter(MetricTicksTotal).Value(); got != 1 {
		t.Fatalf("expected 1 tick recorded, got %v", got)
	}
	if got := reg.Counter(MetricEventsDispatched).Value(); got != 2 {
		t.Fatalf("expected 2 events dispatched recorded, got %v", got)
	}
}

func TestEngineWithoutMetricsReturnsNil(t *testing.T) {
	e := New()
	if e.Metrics() != nil {
		t.Fatal("expected nil metrics when WithMetrics was not used")
	}
}
