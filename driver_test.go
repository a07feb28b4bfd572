package uevloop

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestDriverAdvancesEngineTimerDeterministically(t *testing.T) {
	engine := New(WithLock(NewMutexLock()))
	clock := clockz.NewFakeClock()
	driver := NewDriver(engine, clock, time.Millisecond)

	driver.Start()
	defer driver.Stop()

	clock.Advance(3 * time.Millisecond)
	clock.BlockUntilReady()

	// Give the driver goroutine a chance to process the fired timers;
	// this polls rather than sleeping a fixed duration to avoid flakes.
	deadline := time.Now().Add(time.Second)
	for engine.Scheduler().Now() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	if got := engine.Scheduler().Now(); got != 3 {
		t.Fatalf("expected scheduler clock at 3, got %d", got)
	}
}

func TestDriverStopIsIdempotent(t *testing.T) {
	engine := New(WithLock(NewMutexLock()))
	clock := clockz.NewFakeClock()
	driver := NewDriver(engine, clock, time.Millisecond)

	driver.Start()
	driver.Stop()
	driver.Stop() // must not panic or deadlock
}
