package funcs

// Compose returns f∘g: the function that applies g, then f to its result.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Negate returns the logical complement of a predicate.
func Negate[A any](pred func(A) bool) func(A) bool {
	return func(a A) bool {
		return !pred(a)
	}
}

// Wrap hands fn to wrapper as its first argument, letting the wrapper
// decide whether, when and how to call it:
//
//	greet := func(name string) string { return "hi: " + name }
//	loud := funcs.Wrap(greet, func(g func(string) string, name string) string {
//	    return strings.ToUpper(g(name)) + "!"
//	})
func Wrap[A, T any](fn func(A) T, wrapper func(func(A) T, A) T) func(A) T {
	return func(a A) T {
		return wrapper(fn, a)
	}
}
