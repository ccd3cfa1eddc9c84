package quiz

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer already fired
	// (one-shot) or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks later on the same event loop that drives the
// controller. Callbacks never run concurrently with controller operations.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// stop cancels t if it is live and clears the handle.
func stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
