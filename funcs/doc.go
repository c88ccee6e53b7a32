// Package funcs provides function decorators: factories that wrap a
// callable in a new callable with an additional invocation policy.
//
// # Stateful decorators
//
//   - [Once] / [Once1]: invoke the function on the first call only and
//     return that first result forever after.
//   - [Memoize], [Memoize2], [MemoizeBy], [MemoizeArgs]: cache results per
//     argument value.
//   - [Throttle] / [Throttle1]: leading-edge rate limit — at most one real
//     invocation per wait window, cooled-down calls return the last cached
//     result.
//   - [Debounce]: trailing-edge — the invocation fires only once calls have
//     stopped arriving for a full wait.
//   - [After] / [Before]: gate the function on a call count.
//
// Every call to a decorator factory produces an independent wrapper with
// its own private state; two wrappers never share state, even when they
// wrap the same function. State lives as long as the wrapper is reachable
// and there is nothing to tear down.
//
// The wrappers do no internal locking and are not safe for concurrent use;
// callers with multiple goroutines must serialize access to a wrapper.
//
// # Deferred execution
//
// [Delay], [Throttle] and [Debounce] measure or spend time through a
// [sched.Clock], defaulting to the system clock; pass [WithClock] with a
// [sched.Fake] to make their behavior deterministic in tests.
//
// # Combinators
//
// [Compose], [Negate] and [Wrap] are stateless helpers for building
// functions out of functions.
package funcs
