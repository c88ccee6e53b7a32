package collections

import "reflect"

// This file contains the traversal primitives. [Each] is the only place
// that touches the collection's variant; [Reduce], [ReduceFirst], [Every]
// and [Some] (and every derived operation in derived.go) are defined purely
// in terms of it.

// Each invokes fn(value, key) once per element: in ascending index order for
// a sequence, in unspecified key order for a mapping. Elements are never
// skipped or visited twice. Each has no return value; it exists for the
// side effects of fn. Panics raised by fn propagate to the caller.
func Each[K comparable, V any](c Collection[K, V], fn func(value V, key K)) {
	c.each(fn)
}

// Reduce folds the collection into a single accumulator of type A.
// fn(acc, value, key) is invoked once per element in traversal order,
// starting from seed; the final accumulator is returned. An empty
// collection returns seed unchanged.
func Reduce[K comparable, V, A any](c Collection[K, V], fn func(acc A, value V, key K) A, seed A) A {
	acc := seed
	Each(c, func(v V, k K) {
		acc = fn(acc, v, k)
	})
	return acc
}

// ReduceFirst folds the collection without a seed: the first element in
// traversal order becomes the initial accumulator and is not passed to fn;
// fn(acc, value) is invoked for the second element onward. A single-element
// collection returns that element with fn never invoked. An empty
// collection fails with [ErrEmptyReduction] — there is no sentinel value.
func ReduceFirst[K comparable, V any](c Collection[K, V], fn func(acc, value V) V) (V, error) {
	var acc V
	first := true
	Each(c, func(v V, _ K) {
		if first {
			acc = v
			first = false
			return
		}
		acc = fn(acc, v)
	})
	if first {
		return acc, ErrEmptyReduction
	}
	return acc, nil
}

// Every reports whether the predicate holds for all elements. With no
// predicate it defaults to [Truthy]. The whole collection is traversed
// (predicates run for their side effects too); the result is the logical
// AND over all elements, so an empty collection yields true.
func Every[K comparable, V any](c Collection[K, V], preds ...func(V) bool) bool {
	pred := Truthy[V]
	if len(preds) > 0 {
		pred = preds[0]
	}
	return Reduce(c, func(acc bool, v V, _ K) bool {
		return acc && pred(v)
	}, true)
}

// Some reports whether the predicate holds for at least one element; with
// no predicate it defaults to [Truthy]. It is the logical negation of
// [Every] over the negated predicate, so an empty collection yields false.
func Some[K comparable, V any](c Collection[K, V], preds ...func(V) bool) bool {
	pred := Truthy[V]
	if len(preds) > 0 {
		pred = preds[0]
	}
	return !Every(c, func(v V) bool { return !pred(v) })
}

// Truthy is the default predicate for [Every] and [Some]: it reports
// whether v is anything other than the zero value of its type (so 0, "",
// false, nil and empty structs are falsy).
func Truthy[V any](v V) bool {
	rv := reflect.ValueOf(&v).Elem()
	return !rv.IsZero()
}
