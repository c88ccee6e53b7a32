// Package sched provides the deferred-execution facility used by the timed
// function decorators in package funcs: a clock that can report the current
// time and fire a callback after an elapsed duration.
//
// [System] returns the wall-clock implementation backed by the Go runtime
// timers. [Fake] is a deterministic implementation for tests: time stands
// still until the test advances it, and due callbacks fire in due-time
// order.
//
// Scheduled callbacks cannot be cancelled; once scheduled, a callback
// always eventually fires. The facility guarantees a callback never runs
// earlier than requested, but makes no promise about how much later it
// runs.
package sched

import "time"

// Clock is the collaborator interface the decorators depend on.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Schedule arranges for fn to be invoked once, no earlier than d from
	// now. It returns immediately.
	Schedule(d time.Duration, fn func())
}

type systemClock struct{}

// System returns the Clock backed by the real wall clock: Now is
// [time.Now] and Schedule is [time.AfterFunc]. Callbacks run on their own
// goroutine.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
