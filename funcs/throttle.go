package funcs

import "time"

// Throttle wraps fn with a leading-edge rate limit: the first call invokes
// fn immediately, caches its result, and opens a cooldown of length wait.
// Calls arriving during the cooldown do not invoke fn; they return the most
// recently cached result. Once wait has elapsed the next call invokes fn
// again — the cooldown expiring on its own never triggers an invocation,
// it only restores eligibility.
//
// The wrapper's state machine is READY → (call) invoke fn, cache, COOLING
// → (calls while cooling) cached result → (wait elapses) READY. It is
// realized as a timestamp comparison against the configured clock, so no
// timer goroutine exists and nothing fires asynchronously.
func Throttle[T any](fn func() T, wait time.Duration, opts ...Option) func() T {
	cfg := newSettings(opts)
	var state struct {
		primed bool
		last   time.Time
		result T
	}
	return func() T {
		now := cfg.clock.Now()
		if !state.primed || now.Sub(state.last) >= wait {
			state.result = fn()
			state.last = now
			state.primed = true
		}
		return state.result
	}
}

// Throttle1 is [Throttle] for a one-argument function. The arguments of
// cooled-down calls are discarded — they never reach fn, and the cached
// result they receive was computed from an earlier call's argument.
func Throttle1[A, T any](fn func(A) T, wait time.Duration, opts ...Option) func(A) T {
	cfg := newSettings(opts)
	var state struct {
		primed bool
		last   time.Time
		result T
	}
	return func(a A) T {
		now := cfg.clock.Now()
		if !state.primed || now.Sub(state.last) >= wait {
			state.result = fn(a)
			state.last = now
			state.primed = true
		}
		return state.result
	}
}
