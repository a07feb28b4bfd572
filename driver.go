package uevloop

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Driver is a hosted stand-in for the periodic hardware ISR that an
// embedded target would use to call Engine.UpdateTimer: it runs on its
// own goroutine, outside the Engine's zero-allocation core, and exists
// purely so this module is runnable (and its timer scenarios testable
// with clockz.FakeClock) on a regular OS rather than only cross-compiled
// onto a microcontroller.
type Driver struct {
	clock  clockz.Clock
	engine *Engine
	period time.Duration

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewDriver builds a Driver that calls engine.UpdateTimer(1) once per
// period of clock time. Pass clockz.RealClock for production/manual
// testing, or a clockz.FakeClock for deterministic timer tests.
func NewDriver(engine *Engine, clock clockz.Clock, period time.Duration) *Driver {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Driver{
		clock:  clock,
		engine: engine,
		period: period,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start runs the driver loop on a new goroutine until Stop is called.
func (d *Driver) Start() {
	go func() {
		defer close(d.done)
		for {
			select {
			case <-d.stop:
				return
			case <-d.clock.After(d.period):
				d.engine.UpdateTimer(1)
			}
		}
	}()
}

// Stop signals the driver loop to exit and waits for it to do so.
func (d *Driver) Stop() {
	d.once.Do(func() { close(d.stop) })
	<-d.done
}
