package collections

import (
	"fmt"
	"reflect"
)

// Collection is a generic container that is either a Sequence (ordered,
// index-addressable) or a Mapping (unordered key→value pairs). Which variant
// a value holds is fixed at construction time; every traversal operation in
// this package dispatches on the variant in exactly one place, [Each], and
// is otherwise shape-agnostic.
//
// # Creating a collection
//
//	s := collections.NewSeq(1, 2, 3)                    // Collection[int, int]
//	s := collections.FromSlice([]string{"a", "b"})      // Collection[int, string]
//	m := collections.FromMap(map[string]int{"a": 1})    // Collection[string, int]
//	c, err := collections.Of(decoded)                   // Collection[any, any]
//
// Sequence collections always carry int keys (the element index); the
// constructors enforce this, so K is int for every sequence a caller can
// obtain.
//
// # Traversal
//
// The traversal primitives ([Each], [Reduce], [ReduceFirst], [Every],
// [Some]) and every derived operation ([Map], [Filter], [Pluck], …) are
// package-level generic functions: Go methods cannot introduce new type
// parameters, so operations that change the element type must live outside
// the struct.
//
// The zero value of Collection is an empty sequence.
//
// Collections are immutable once constructed: transformation operations
// return new collections and the constructors copy their input, so a
// Collection is safe to share for reads.
type Collection[K comparable, V any] struct {
	seq  []V
	dict map[K]V
	kind kind
}

type kind uint8

const (
	kindSeq kind = iota
	kindDict
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSeq creates a sequence collection from a variadic list of items (copied).
func NewSeq[V any](items ...V) Collection[int, V] {
	return FromSlice(items)
}

// FromSlice creates a sequence collection from a slice (the slice is copied).
func FromSlice[V any](items []V) Collection[int, V] {
	dst := make([]V, len(items))
	copy(dst, items)
	return Collection[int, V]{seq: dst, kind: kindSeq}
}

// FromMap creates a mapping collection from a map (the map is copied).
func FromMap[K comparable, V any](items map[K]V) Collection[K, V] {
	dst := make(map[K]V, len(items))
	for k, v := range items {
		dst[k] = v
	}
	return Collection[K, V]{dict: dst, kind: kindDict}
}

// EmptySeq creates an empty sequence collection of type V.
func EmptySeq[V any]() Collection[int, V] {
	return Collection[int, V]{kind: kindSeq}
}

// Of adapts an arbitrary dynamic value into a Collection[any, any]:
// slices and arrays become sequences, maps become mappings. Any other value
// fails with [ErrNotCollection]. Intended for values of unknown static type,
// e.g. the result of decoding JSON into an any.
func Of(v any) (Collection[any, any], error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return Collection[any, any]{seq: items, kind: kindSeq}, nil
	case reflect.Map:
		items := make(map[any]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			items[iter.Key().Interface()] = iter.Value().Interface()
		}
		return Collection[any, any]{dict: items, kind: kindDict}, nil
	default:
		return Collection[any, any]{}, fmt.Errorf("%w: %T", ErrNotCollection, v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements in the collection.
func (c Collection[K, V]) Count() int {
	if c.kind == kindDict {
		return len(c.dict)
	}
	return len(c.seq)
}

// IsEmpty reports whether the collection contains no elements.
func (c Collection[K, V]) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection has at least one element.
func (c Collection[K, V]) IsNotEmpty() bool { return c.Count() > 0 }

// Ordered reports whether the collection is a sequence (index-addressable).
func (c Collection[K, V]) Ordered() bool { return c.kind == kindSeq }

// Get returns the value stored under key together with a presence flag.
// For sequences the key is the element index; out-of-range indices return
// the zero value and false.
func (c Collection[K, V]) Get(key K) (V, bool) {
	var zero V
	if c.kind == kindDict {
		v, ok := c.dict[key]
		return v, ok
	}
	i, ok := any(key).(int)
	if !ok || i < 0 || i >= len(c.seq) {
		return zero, false
	}
	return c.seq[i], true
}

// Values returns the element values as a plain slice: in index order for a
// sequence, in unspecified order for a mapping. The slice is freshly
// allocated on every call.
func (c Collection[K, V]) Values() []V {
	if c.kind == kindDict {
		out := make([]V, 0, len(c.dict))
		for _, v := range c.dict {
			out = append(out, v)
		}
		return out
	}
	out := make([]V, len(c.seq))
	copy(out, c.seq)
	return out
}

// Keys returns the keys of the collection: 0 … Count()-1 for a sequence,
// the map keys in unspecified order for a mapping.
func (c Collection[K, V]) Keys() []K {
	if c.kind == kindDict {
		out := make([]K, 0, len(c.dict))
		for k := range c.dict {
			out = append(out, k)
		}
		return out
	}
	out := make([]K, len(c.seq))
	for i := range out {
		// Sequences are only constructible with K = int.
		out[i] = any(i).(K)
	}
	return out
}

// ToMap returns the key→value pairs as a plain map. For a sequence the keys
// are the element indices.
func (c Collection[K, V]) ToMap() map[K]V {
	out := make(map[K]V, c.Count())
	c.each(func(v V, k K) { out[k] = v })
	return out
}

// String returns a printable representation of the underlying variant.
// It implements [fmt.Stringer].
func (c Collection[K, V]) String() string {
	if c.kind == kindDict {
		return fmt.Sprintf("%v", c.dict)
	}
	return fmt.Sprintf("%v", c.seq)
}

// each is the single variant-dispatch point: index order for sequences,
// map iteration order for mappings. Everything else in the package funnels
// through here (directly or via the exported [Each]).
func (c Collection[K, V]) each(fn func(V, K)) {
	if c.kind == kindDict {
		for k, v := range c.dict {
			fn(v, k)
		}
		return
	}
	for i, v := range c.seq {
		// Sequences are only constructible with K = int.
		fn(v, any(i).(K))
	}
}

// sameShape returns an empty collection of the same variant as c, used by
// derived operations that preserve the input shape.
func sameShape[K comparable, V, U any](c Collection[K, V]) Collection[K, U] {
	out := Collection[K, U]{kind: c.kind}
	if c.kind == kindDict {
		out.dict = make(map[K]U, len(c.dict))
	} else {
		out.seq = make([]U, 0, len(c.seq))
	}
	return out
}

// put appends to the sequence or stores under key, matching the variant.
func (c *Collection[K, V]) put(v V, k K) {
	if c.kind == kindDict {
		c.dict[k] = v
		return
	}
	c.seq = append(c.seq, v)
}
