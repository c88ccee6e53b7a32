package funcs

// Once wraps fn so that it is invoked on the first call only; the first
// result is cached and returned by every subsequent call. Once the wrapper
// has fired, its behavior is fixed forever — there is no time or argument
// dependence. A panicking fn still counts as invoked.
func Once[T any](fn func() T) func() T {
	var state struct {
		invoked bool
		result  T
	}
	return func() T {
		if !state.invoked {
			state.invoked = true
			state.result = fn()
		}
		return state.result
	}
}

// Once1 is [Once] for a one-argument function. Only the first call's
// argument ever reaches fn; arguments of later calls are ignored and the
// cached first result is returned.
func Once1[A, T any](fn func(A) T) func(A) T {
	var state struct {
		invoked bool
		result  T
	}
	return func(a A) T {
		if !state.invoked {
			state.invoked = true
			state.result = fn(a)
		}
		return state.result
	}
}
