package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrEmptyReduction is returned by ReduceFirst when the collection is
	// empty: with no seed there is no value the fold could start from.
	ErrEmptyReduction = errors.New("collections: reduce of empty collection with no seed")

	// ErrNotCollection is returned by Of when the given value is neither a
	// slice/array nor a map.
	ErrNotCollection = errors.New("collections: value is not a sequence or mapping")

	// ErrMixinNotFound is returned when an unregistered mixin name is called.
	ErrMixinNotFound = errors.New("collections: mixin not found")
)
