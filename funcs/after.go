package funcs

// After wraps fn so that it only starts executing from the nth call
// onward; earlier calls return the zero value of T without invoking fn.
// Useful for running something once a known number of preconditions have
// checked in.
func After[T any](n int, fn func() T) func() T {
	var calls int
	return func() T {
		calls++
		if calls < n {
			var zero T
			return zero
		}
		return fn()
	}
}

// Before wraps fn so that it executes for at most the first n-1 calls;
// from the nth call onward the wrapper returns the result of the last real
// invocation without calling fn again.
func Before[T any](n int, fn func() T) func() T {
	var state struct {
		calls int
		last  T
	}
	return func() T {
		if state.calls < n-1 {
			state.calls++
			state.last = fn()
		}
		return state.last
	}
}
