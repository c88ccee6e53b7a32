package funcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iam-peekay/underbar/funcs"
)

func TestAfter(t *testing.T) {
	calls := 0
	wrapped := funcs.After(3, func() string {
		calls++
		return "go"
	})

	require.Equal(t, "", wrapped())
	require.Equal(t, "", wrapped())
	require.Zero(t, calls)

	require.Equal(t, "go", wrapped())
	require.Equal(t, "go", wrapped())
	require.Equal(t, 2, calls, "from the nth call onward every call invokes")
}

func TestBefore(t *testing.T) {
	calls := 0
	wrapped := funcs.Before(3, func() int {
		calls++
		return calls * 10
	})

	require.Equal(t, 10, wrapped())
	require.Equal(t, 20, wrapped())
	require.Equal(t, 2, calls)

	require.Equal(t, 20, wrapped())
	require.Equal(t, 20, wrapped())
	require.Equal(t, 2, calls, "from the nth call onward the last result repeats")
}
