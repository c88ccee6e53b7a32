package funcs

import "time"

// Delay schedules a single invocation of fn to occur no earlier than wait
// from now, then returns immediately. There is no upper bound on when the
// invocation actually runs and no way to cancel it. A panic inside fn
// surfaces wherever the deferred invocation runs — with the system clock,
// on the timer goroutine — not at the call to Delay, which has long
// returned.
func Delay(fn func(), wait time.Duration, opts ...Option) {
	newSettings(opts).clock.Schedule(wait, fn)
}

// Delay1 is [Delay] for a one-argument function: the argument is captured
// now and handed to fn when the deferred invocation fires.
func Delay1[A any](fn func(A), wait time.Duration, arg A, opts ...Option) {
	newSettings(opts).clock.Schedule(wait, func() { fn(arg) })
}
