// Package collections provides generic traversal primitives and derived
// helpers over two collection shapes: ordered sequences and key→value
// mappings.
//
// # Overview
//
// The central type is [Collection][K, V], a tagged variant holding either a
// Sequence (built with [NewSeq], [FromSlice]) or a Mapping (built with
// [FromMap]). A single entry point, [Each], dispatches on the variant;
// every other operation in the package — the fold [Reduce]/[ReduceFirst],
// the quantifiers [Every]/[Some], and all derived helpers such as [Map],
// [Filter], [Pluck], [Zip], [SortBy], [GroupBy] — reaches elements only
// through Each and is therefore shape-agnostic.
//
//	evens := collections.Filter(collections.NewSeq(1, 2, 3, 4, 5, 6),
//	    func(n, _ int) bool { return n%2 == 0 })
//	total := collections.Reduce(evens,
//	    func(acc, n, _ int) int { return acc + n }, 0) // → 12
//
// # Reducing without a seed
//
// [Reduce] takes an explicit seed and returns it unchanged for an empty
// collection. [ReduceFirst] uses the first element as the initial
// accumulator instead; reducing an empty collection this way has no
// defensible result, so it fails with [ErrEmptyReduction] rather than
// inventing one.
//
// # Dynamic values
//
// [Of] adapts a value of unknown static type (for example the result of
// json.Unmarshal into an any): slices and arrays become sequences, maps
// become mappings, and everything else fails with [ErrNotCollection]. In
// the rest of the API the invalid-collection condition cannot arise — the
// type system rules it out.
//
// # Mixins (runtime extension)
//
// Register named operations at runtime via [RegisterMixin] and call them
// through [Collection.Mixin]; see mixin.go for an example.
//
// # Concurrency
//
// Collections are immutable after construction and safe to share for
// reads. The traversal functions hold no state between calls: repeated
// calls with the same inputs and side-effect-free callbacks produce
// identical results.
package collections
