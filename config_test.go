package uevloop

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	if s.signalWidth != 16 {
		t.Fatalf("expected default signal width 16, got %d", s.signalWidth)
	}
	if _, ok := s.lock.(NoopLock); !ok {
		t.Fatalf("expected default lock NoopLock, got %T", s.lock)
	}
	if _, ok := s.logger.(NopLogger); !ok {
		t.Fatalf("expected default logger NopLogger, got %T", s.logger)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	s := defaultSettings()
	for _, o := range []Option{
		WithEventCapacity(3),
		WithNodeCapacity(4),
		WithEventQueueCapacity(2),
		WithScheduleQueueCapacity(2),
		WithSignalWidth(8),
		WithLock(NewMutexLock()),
	} {
		o(&s)
	}

	if s.eventsLog2 != 3 || s.nodesLog2 != 4 || s.eventQueueLog2 != 2 || s.scheduleQueueLog2 != 2 {
		t.Fatalf("unexpected sizes: %+v", s)
	}
	if s.signalWidth != 8 {
		t.Fatalf("expected signal width 8, got %d", s.signalWidth)
	}
	if _, ok := s.lock.(*MutexLock); !ok {
		t.Fatalf("expected MutexLock, got %T", s.lock)
	}
}

func TestWithSignalWidthIgnoresZero(t *testing.T) {
	s := defaultSettings()
	WithSignalWidth(0)(&s)
	if s.signalWidth != 16 {
		t.Fatalf("expected WithSignalWidth(0) to be ignored, got %d", s.signalWidth)
	}
}
