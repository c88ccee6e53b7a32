package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iam-peekay/underbar/funcs"
)

func TestMemoizeCachesPerArgument(t *testing.T) {
	calls := 0
	wrapped := funcs.Memoize(func(n int) int {
		calls++
		return n * n
	})

	require.Equal(t, 9, wrapped(3))
	require.Equal(t, 9, wrapped(3))
	require.Equal(t, 1, calls)

	require.Equal(t, 16, wrapped(4))
	require.Equal(t, 2, calls)
	require.Equal(t, 9, wrapped(3))
	require.Equal(t, 2, calls)
}

func TestMemoize2KeyIsOrderPreserving(t *testing.T) {
	calls := 0
	wrapped := funcs.Memoize2(func(a, b int) int {
		calls++
		return a*100 + b
	})

	require.Equal(t, 304, wrapped(3, 4))
	require.Equal(t, 304, wrapped(3, 4))
	require.Equal(t, 1, calls, "equal argument pair must hit the cache")

	require.Equal(t, 403, wrapped(4, 3))
	require.Equal(t, 2, calls, "permuted arguments are a distinct key")

	require.Equal(t, 304, wrapped(3, 4))
	require.Equal(t, 403, wrapped(4, 3))
	require.Equal(t, 2, calls)
}

func TestMemoizeBy(t *testing.T) {
	calls := 0
	wrapped := funcs.MemoizeBy(func(ns []int) int {
		calls++
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	}, func(ns []int) int { return len(ns) })

	require.Equal(t, 3, wrapped([]int{1, 2}))
	require.Equal(t, 3, wrapped([]int{7, 7}), "same key, cached result")
	require.Equal(t, 1, calls)
	require.Equal(t, 5, wrapped([]int{5}))
	require.Equal(t, 2, calls)
}

func TestMemoizeArgs(t *testing.T) {
	calls := 0
	wrapped := funcs.MemoizeArgs(func(args ...any) any {
		calls++
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	})

	require.Equal(t, 7, wrapped(3, 4))
	require.Equal(t, 7, wrapped(3, 4))
	require.Equal(t, 1, calls, "equal argument lists share a key")

	require.Equal(t, 7, wrapped(4, 3))
	require.Equal(t, 2, calls, "order is part of the key")

	require.Equal(t, 7, wrapped(3, 4))
	require.Equal(t, 7, wrapped(4, 3))
	require.Equal(t, 2, calls)
}

func TestMemoizeArgsAdjacentValuesDoNotRunTogether(t *testing.T) {
	calls := 0
	wrapped := funcs.MemoizeArgs(func(args ...any) any {
		calls++
		return len(args)
	})

	require.Equal(t, 2, wrapped(1, 2))
	require.Equal(t, 1, wrapped(12))
	require.Equal(t, 2, calls)
}

func TestMemoizeArgsEqualByValue(t *testing.T) {
	calls := 0
	wrapped := funcs.MemoizeArgs(func(args ...any) any {
		calls++
		return calls
	})

	// Distinct map values that are structurally equal serialize canonically
	// (JSON sorts keys) and therefore share an entry.
	wrapped(map[string]int{"a": 1, "b": 2})
	wrapped(map[string]int{"b": 2, "a": 1})
	require.Equal(t, 1, calls)
}

func TestMemoizeArgsUnserializableBypassesCache(t *testing.T) {
	calls := 0
	wrapped := funcs.MemoizeArgs(func(args ...any) any {
		calls++
		return calls
	})

	fn := func() {}
	require.Equal(t, 1, wrapped(fn))
	require.Equal(t, 2, wrapped(fn), "non-canonicalizable arguments are never cached")
}

func TestMemoizeWrappersAreIndependent(t *testing.T) {
	calls := 0
	fn := func(n int) int {
		calls++
		return n
	}
	a := funcs.Memoize(fn)
	b := funcs.Memoize(fn)

	a(1)
	b(1)
	require.Equal(t, 2, calls, "wrappers must not share a cache")
}
