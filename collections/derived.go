package collections

import (
	"math/rand"
	"sort"
)

// This file contains the derived collection operations. Every one of them
// is a consumer of the traversal core: they reach elements exclusively
// through [Each] (or another derived operation), never by re-implementing
// the sequence/mapping dispatch.

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(value, key) to every element and returns a new collection
// of the same shape: sequences map to sequences (in index order), mappings
// to mappings under the same keys.
func Map[K comparable, V, U any](c Collection[K, V], fn func(V, K) U) Collection[K, U] {
	out := sameShape[K, V, U](c)
	Each(c, func(v V, k K) {
		out.put(fn(v, k), k)
	})
	return out
}

// Filter returns a new collection of the same shape containing only the
// elements for which fn(value, key) returns true. Sequence results are
// re-indexed from zero.
func Filter[K comparable, V any](c Collection[K, V], fn func(V, K) bool) Collection[K, V] {
	out := sameShape[K, V, V](c)
	Each(c, func(v V, k K) {
		if fn(v, k) {
			out.put(v, k)
		}
	})
	return out
}

// Reject is the complement of [Filter]: it drops the elements for which fn
// returns true.
func Reject[K comparable, V any](c Collection[K, V], fn func(V, K) bool) Collection[K, V] {
	return Filter(c, func(v V, k K) bool { return !fn(v, k) })
}

// Pluck extracts a single value from every element, e.g. one field of a
// struct. It is [Map] without the key argument.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[K comparable, V, U any](c Collection[K, V], fn func(V) U) Collection[K, U] {
	return Map(c, func(v V, _ K) U { return fn(v) })
}

// Flatten flattens one level of nesting: a sequence of slices becomes a
// single sequence.
func Flatten[V any](c Collection[int, []V]) Collection[int, V] {
	out := EmptySeq[V]()
	Each(c, func(chunk []V, _ int) {
		for _, v := range chunk {
			out.seq = append(out.seq, v)
		}
	})
	return out
}

// FlattenDeep recursively flattens a dynamic sequence whose elements may be
// nested []any values or sequence collections of arbitrary depth.
func FlattenDeep(c Collection[int, any]) Collection[int, any] {
	out := EmptySeq[any]()
	var flatten func(v any)
	flatten = func(v any) {
		switch nested := v.(type) {
		case []any:
			for _, item := range nested {
				flatten(item)
			}
		case Collection[int, any]:
			Each(nested, func(item any, _ int) { flatten(item) })
		default:
			out.seq = append(out.seq, v)
		}
	}
	Each(c, func(v any, _ int) { flatten(v) })
	return out
}

// Zip combines two sequences element-by-element into Pairs, stopping at the
// shorter of the two.
func Zip[A, B any](a Collection[int, A], b Collection[int, B]) Collection[int, Pair[A, B]] {
	bs := b.Values()
	out := EmptySeq[Pair[A, B]]()
	Each(a, func(v A, i int) {
		if i < len(bs) {
			out.seq = append(out.seq, Pair[A, B]{First: v, Second: bs[i]})
		}
	})
	return out
}

// SortBy returns a sequence of the element values sorted in ascending order
// by the float64 value extracted by fn. The sort is stable. Mappings sort
// into a sequence, since a mapping has no element order to preserve.
func SortBy[K comparable, V any](c Collection[K, V], fn func(V) float64) Collection[int, V] {
	out := FromSlice(c.Values())
	sort.SliceStable(out.seq, func(i, j int) bool {
		return fn(out.seq[i]) < fn(out.seq[j])
	})
	return out
}

// Shuffle returns a sequence of the element values in a randomly shuffled
// order.
func Shuffle[K comparable, V any](c Collection[K, V]) Collection[int, V] {
	out := FromSlice(c.Values())
	rand.Shuffle(len(out.seq), func(i, j int) {
		out.seq[i], out.seq[j] = out.seq[j], out.seq[i]
	})
	return out
}

// Sample returns a sequence of n randomly selected elements without
// replacement. If n >= Count(), a shuffled copy of all values is returned.
func Sample[K comparable, V any](c Collection[K, V], n int) Collection[int, V] {
	out := Shuffle(c)
	if n < 0 {
		n = 0
	}
	if n < len(out.seq) {
		out.seq = out.seq[:n]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & membership
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether the collection holds at least one element equal
// to target.
func Contains[K comparable, V comparable](c Collection[K, V], target V) bool {
	return Some(c, func(v V) bool { return v == target })
}

// IndexOf returns the index of the first element of the sequence equal to
// target, or -1 when absent.
func IndexOf[V comparable](c Collection[int, V], target V) int {
	found := -1
	Each(c, func(v V, i int) {
		if found < 0 && v == target {
			found = i
		}
	})
	return found
}

// First returns the first element of the sequence, optionally the first
// matching preds[0]. Returns the zero value and false when the sequence is
// empty or no element matches.
func First[V any](c Collection[int, V], preds ...func(V) bool) (V, bool) {
	var first V
	matched := false
	Each(c, func(v V, _ int) {
		if matched {
			return
		}
		if len(preds) == 0 || preds[0](v) {
			first = v
			matched = true
		}
	})
	return first, matched
}

// Last returns the last element of the sequence, optionally the last
// matching preds[0]. Returns the zero value and false when the sequence is
// empty or no element matches.
func Last[V any](c Collection[int, V], preds ...func(V) bool) (V, bool) {
	var last V
	matched := false
	Each(c, func(v V, _ int) {
		if len(preds) == 0 || preds[0](v) {
			last = v
			matched = true
		}
	})
	return last, matched
}

// Take returns a sequence of at most the first n elements.
func Take[V any](c Collection[int, V], n int) Collection[int, V] {
	return Filter(c, func(_ V, i int) bool { return i < n })
}

// Rest returns the sequence without its first n elements.
func Rest[V any](c Collection[int, V], n int) Collection[int, V] {
	return Filter(c, func(_ V, i int) bool { return i >= n })
}

// Initial returns the sequence without its last n elements.
func Initial[V any](c Collection[int, V], n int) Collection[int, V] {
	cut := c.Count() - n
	return Filter(c, func(_ V, i int) bool { return i < cut })
}

// ─────────────────────────────────────────────────────────────────────────────
// Set-like operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns the sequence with duplicate values removed; the first
// occurrence wins.
func Uniq[V comparable](c Collection[int, V]) Collection[int, V] {
	return UniqBy(c, func(v V) V { return v })
}

// UniqBy returns the sequence with duplicates removed, comparing elements
// by the key extracted by fn; the first occurrence wins.
func UniqBy[V any, I comparable](c Collection[int, V], fn func(V) I) Collection[int, V] {
	seen := make(map[I]struct{}, c.Count())
	return Filter(c, func(v V, _ int) bool {
		k := fn(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Difference returns the elements of a that are not present in b.
func Difference[V comparable](a, b Collection[int, V]) Collection[int, V] {
	set := make(map[V]struct{}, b.Count())
	Each(b, func(v V, _ int) { set[v] = struct{}{} })
	return Filter(a, func(v V, _ int) bool {
		_, found := set[v]
		return !found
	})
}

// Intersection returns the distinct elements of a that are also present
// in b, in a's order.
func Intersection[V comparable](a, b Collection[int, V]) Collection[int, V] {
	set := make(map[V]struct{}, b.Count())
	Each(b, func(v V, _ int) { set[v] = struct{}{} })
	return Filter(Uniq(a), func(v V, _ int) bool {
		_, found := set[v]
		return found
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups the element values into sequences keyed by the value
// extracted by fn.
func GroupBy[K comparable, V any, G comparable](c Collection[K, V], fn func(V) G) map[G]Collection[int, V] {
	groups := make(map[G]Collection[int, V])
	Each(c, func(v V, _ K) {
		g := fn(v)
		group, ok := groups[g]
		if !ok {
			group = EmptySeq[V]()
		}
		group.seq = append(group.seq, v)
		groups[g] = group
	})
	return groups
}

// CountBy counts the elements per key extracted by fn.
func CountBy[K comparable, V any, G comparable](c Collection[K, V], fn func(V) G) map[G]int {
	counts := make(map[G]int)
	Each(c, func(v V, _ K) { counts[fn(v)]++ })
	return counts
}

// Partition splits the collection in two, preserving its shape: the first
// result holds the elements for which pred returns true, the second the
// rest.
func Partition[K comparable, V any](c Collection[K, V], pred func(V) bool) (Collection[K, V], Collection[K, V]) {
	pass := Filter(c, func(v V, _ K) bool { return pred(v) })
	fail := Filter(c, func(v V, _ K) bool { return !pred(v) })
	return pass, fail
}

// Min returns the element with the smallest value extracted by fn.
// Returns the zero value and false when the collection is empty.
func Min[K comparable, V any](c Collection[K, V], fn func(V) float64) (V, bool) {
	min, err := ReduceFirst(c, func(acc, v V) V {
		if fn(v) < fn(acc) {
			return v
		}
		return acc
	})
	return min, err == nil
}

// Max returns the element with the largest value extracted by fn.
// Returns the zero value and false when the collection is empty.
func Max[K comparable, V any](c Collection[K, V], fn func(V) float64) (V, bool) {
	max, err := ReduceFirst(c, func(acc, v V) V {
		if fn(v) > fn(acc) {
			return v
		}
		return acc
	})
	return max, err == nil
}

// Sum returns the sum over all elements of the value extracted by fn.
func Sum[K comparable, V any](c Collection[K, V], fn func(V) float64) float64 {
	return Reduce(c, func(acc float64, v V, _ K) float64 {
		return acc + fn(v)
	}, 0)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────────────────────────────────────────

// Invert returns a mapping from each element value to its key. When several
// elements share a value, the surviving key is unspecified for mappings and
// the highest index for sequences.
func Invert[K comparable, V comparable](c Collection[K, V]) Collection[V, K] {
	out := Collection[V, K]{dict: make(map[V]K, c.Count()), kind: kindDict}
	Each(c, func(v V, k K) { out.dict[v] = k })
	return out
}

// Extend returns a mapping with all pairs of dst plus all pairs of src;
// on key conflicts src wins.
func Extend[K comparable, V any](dst, src Collection[K, V]) Collection[K, V] {
	out := Collection[K, V]{dict: make(map[K]V, dst.Count()+src.Count()), kind: kindDict}
	Each(dst, func(v V, k K) { out.dict[k] = v })
	Each(src, func(v V, k K) { out.dict[k] = v })
	return out
}

// Defaults returns a mapping with all pairs of dst, filling in pairs from
// src only for keys dst does not already have.
func Defaults[K comparable, V any](dst, src Collection[K, V]) Collection[K, V] {
	out := Collection[K, V]{dict: make(map[K]V, dst.Count()+src.Count()), kind: kindDict}
	Each(src, func(v V, k K) { out.dict[k] = v })
	Each(dst, func(v V, k K) { out.dict[k] = v })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Generators
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the sequence start, start+step, … up to but not including
// stop. A zero step defaults to 1 (or -1 for descending ranges).
func Range(start, stop, step int) Collection[int, int] {
	if step == 0 {
		if stop < start {
			step = -1
		} else {
			step = 1
		}
	}
	out := EmptySeq[int]()
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		out.seq = append(out.seq, v)
	}
	return out
}
