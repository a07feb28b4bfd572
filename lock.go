package uevloop

import "sync"

// Lock brackets every access to state shared between the main foreground
// context and a periodic ISR (UpdateTimer). On the target platform this
// is an interrupt mask/unmask pair; NoopLock is correct whenever the
// caller guarantees Tick/UpdateTimer never actually interleave (e.g. a
// single-threaded test, or a platform with a true ISR that cannot
// preempt itself).
type Lock interface {
	Enter()
	Exit()
}

// NoopLock is the default Lock: both methods do nothing. Appropriate on
// a single-core target where the "ISR" is just another call into Tick's
// caller, never true concurrent hardware interrupt.
type NoopLock struct{}

func (NoopLock) Enter() {}
func (NoopLock) Exit()  {}

// MutexLock adapts a sync.Mutex to Lock, for hosted builds and tests
// that run UpdateTimer from a real goroutine concurrently with Tick.
type MutexLock struct {
	mu sync.Mutex
}

func NewMutexLock() *MutexLock {
	return &MutexLock{}
}

func (l *MutexLock) Enter() { l.mu.Lock() }
func (l *MutexLock) Exit()  { l.mu.Unlock() }
