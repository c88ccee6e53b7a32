package funcs

import "time"

// Debounce wraps fn so that an invocation fires only once calls have
// stopped arriving for a full wait: every call postpones the pending
// invocation by scheduling a fresh one and superseding the previous.
// Rapid bursts therefore collapse into a single trailing invocation of fn,
// wait after the last call in the burst.
func Debounce(fn func(), wait time.Duration, opts ...Option) func() {
	cfg := newSettings(opts)
	var generation int
	return func() {
		generation++
		g := generation
		cfg.clock.Schedule(wait, func() {
			// Superseded by a later call while this one was pending.
			if g != generation {
				return
			}
			fn()
		})
	}
}
