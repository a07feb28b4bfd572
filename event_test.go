package uevloop

import "testing"

func TestEventConfigClosure(t *testing.T) {
	var e Event
	c := NewClosure(func(ctx any, p any) any { return 1 }, nil, nil, nil)
	e.ConfigClosure(c)

	if e.Kind() != KindClosure {
		t.Fatalf("expected KindClosure, got %v", e.Kind())
	}
}

func TestEventConfigTimer(t *testing.T) {
	var e Event
	c := NewClosure(func(ctx any, p any) any { return nil }, nil, nil, nil)
	e.ConfigTimer(c, 1000, 250, true, false)

	if e.Kind() != KindTimer {
		t.Fatalf("expected KindTimer, got %v", e.Kind())
	}
	if e.dueTime != 1000 || e.period != 250 || !e.repeating || e.immediate {
		t.Fatalf("unexpected timer fields: %+v", e)
	}

	e.Cancel()
	if !e.cancelled {
		t.Fatal("expected cancelled flag set")
	}
}

func TestEventConfigSignalListenerAndObserver(t *testing.T) {
	var e Event
	c := NewClosure(func(ctx any, p any) any { return nil }, nil, nil, nil)
	e.ConfigSignalListener(c, 7, true)

	if e.Kind() != KindSignalListener || e.signalID != 7 || !e.recurring || !e.listening {
		t.Fatalf("unexpected listener fields: %+v", e)
	}

	var o Event
	o.ConfigObserver(c, false)
	if o.Kind() != KindObserver || o.recurring || !o.listening {
		t.Fatalf("unexpected observer fields: %+v", o)
	}
}

func TestEventDestroyRunsDestructorAndClearsListening(t *testing.T) {
	destroyed := false
	c := NewClosure(func(ctx any, p any) any { return nil }, nil, nil, func(ctx, p any) {
		destroyed = true
	})

	var e Event
	e.ConfigSignalListener(c, 1, true)
	e.Destroy()

	if !destroyed {
		t.Fatal("expected destructor invoked")
	}
	if e.listening {
		t.Fatal("expected listening cleared")
	}
}
