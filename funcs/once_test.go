package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iam-peekay/underbar/funcs"
)

func TestOnceInvokesExactlyOnce(t *testing.T) {
	calls := 0
	wrapped := funcs.Once(func() int {
		calls++
		return 42
	})

	for j := 0; j < 5; j++ {
		require.Equal(t, 42, wrapped())
	}
	require.Equal(t, 1, calls)
}

func TestOnce1IgnoresLaterArguments(t *testing.T) {
	calls := 0
	wrapped := funcs.Once1(func(n int) int {
		calls++
		return n * 10
	})

	require.Equal(t, 10, wrapped(1))
	for _, arg := range []int{2, 3, 4, 5} {
		require.Equal(t, 10, wrapped(arg), "later arguments must not change the result")
	}
	require.Equal(t, 1, calls)
}

func TestOnceWrappersAreIndependent(t *testing.T) {
	calls := 0
	fn := func() int {
		calls++
		return calls
	}
	a := funcs.Once(fn)
	b := funcs.Once(fn)

	require.Equal(t, 1, a())
	require.Equal(t, 2, b(), "each wrapper owns its own invoked flag")
	require.Equal(t, 1, a())
	require.Equal(t, 2, b())
	require.Equal(t, 2, calls)
}

func TestOncePanicStillCounts(t *testing.T) {
	calls := 0
	wrapped := funcs.Once(func() int {
		calls++
		panic("boom")
	})

	require.Panics(t, func() { wrapped() })
	require.NotPanics(t, func() { wrapped() })
	require.Equal(t, 1, calls)
	require.Zero(t, wrapped())
}
