package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iam-peekay/underbar/collections"
)

func TestMixin(t *testing.T) {
	defer collections.FlushMixins()

	collections.RegisterMixin("sum", func(col any, _ ...any) any {
		c := col.(collections.Collection[int, int])
		return collections.Reduce(c, func(acc, n, _ int) int { return acc + n }, 0)
	})

	require.True(t, collections.HasMixin("sum"))

	result, err := ints(1, 2, 3, 4, 5).Mixin("sum")
	require.NoError(t, err)
	require.Equal(t, 15, result)
}

func TestMixinForwardsArgs(t *testing.T) {
	defer collections.FlushMixins()

	collections.RegisterMixin("over", func(col any, args ...any) any {
		c := col.(collections.Collection[int, int])
		limit := args[0].(int)
		return collections.Filter(c, func(n, _ int) bool { return n > limit })
	})

	result, err := ints(1, 5, 9).Mixin("over", 4)
	require.NoError(t, err)
	require.Equal(t, []int{5, 9}, result.(collections.Collection[int, int]).Values())
}

func TestMixinNotFound(t *testing.T) {
	_, err := ints(1).Mixin("nonexistent_mixin_xyz")
	require.ErrorIs(t, err, collections.ErrMixinNotFound)
}

func TestFlushMixins(t *testing.T) {
	collections.RegisterMixin("temp", func(col any, _ ...any) any { return nil })
	collections.FlushMixins()
	require.False(t, collections.HasMixin("temp"))
}
