package funcs

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// Memoize wraps fn with a per-argument result cache: the first call with a
// given argument invokes fn and stores the result; later calls with an
// equal argument return the stored result without invoking fn. The cache
// is unbounded and private to the returned wrapper.
func Memoize[A comparable, T any](fn func(A) T) func(A) T {
	cache := make(map[A]T)
	return func(a A) T {
		if v, ok := cache[a]; ok {
			return v
		}
		v := fn(a)
		cache[a] = v
		return v
	}
}

// argPair is the order-preserving cache key for [Memoize2].
type argPair[A, B comparable] struct {
	a A
	b B
}

// Memoize2 is [Memoize] for a two-argument function. The cache key is the
// ordered argument pair, so fn(3, 4) and fn(4, 3) occupy distinct entries.
func Memoize2[A, B comparable, T any](fn func(A, B) T) func(A, B) T {
	cache := make(map[argPair[A, B]]T)
	return func(a A, b B) T {
		k := argPair[A, B]{a, b}
		if v, ok := cache[k]; ok {
			return v
		}
		v := fn(a, b)
		cache[k] = v
		return v
	}
}

// MemoizeBy memoizes fn using a caller-supplied key extraction function,
// for argument types that are not comparable (slices, structs with slice
// fields, …). Arguments that map to equal keys share a cache entry; the
// caller is responsible for the key being a faithful identity.
func MemoizeBy[A any, I comparable, T any](fn func(A) T, key func(A) I) func(A) T {
	cache := make(map[I]T)
	return func(a A) T {
		k := key(a)
		if v, ok := cache[k]; ok {
			return v
		}
		v := fn(a)
		cache[k] = v
		return v
	}
}

// MemoizeArgs memoizes a variadic dynamic function. The cache key is a
// 64-bit digest of the canonical, order-preserving serialization of the
// full argument list, so equal argument lists — by value, not identity —
// share an entry, while permuted lists ([3,4] vs [4,3]) do not.
//
// Known limitations, by design rather than patched around:
//
//   - Only arguments that serialize deterministically are guaranteed
//     correct. Go's JSON encoder emits map keys sorted, so
//     structurally-equal maps built in different orders hash identically;
//     but values that do not round-trip through JSON faithfully (NaN,
//     cyclic structures) void the guarantee.
//   - Arguments that cannot be serialized at all (functions, channels)
//     bypass the cache: fn is invoked directly and nothing is stored.
//   - Distinct argument lists colliding in the 64-bit digest would share
//     an entry. This is astronomically unlikely but not impossible.
func MemoizeArgs(fn func(...any) any) func(...any) any {
	cache := make(map[uint64]any)
	return func(args ...any) any {
		k, err := argsKey(args)
		if err != nil {
			return fn(args...)
		}
		if v, ok := cache[k]; ok {
			return v
		}
		v := fn(args...)
		cache[k] = v
		return v
	}
}

// argsKey digests the canonical serialization of an argument list.
// Each argument is JSON-encoded and terminated with a NUL so that adjacent
// arguments cannot run together ("1","2" never collides with "12").
func argsKey(args []any) (uint64, error) {
	d := xxhash.New()
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return 0, err
		}
		_, _ = d.Write(b)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64(), nil
}
