// Package point provides Point[T] — an owned, fixed-dimensional tuple of N
// homogeneous values — together with the element-wise transform engine used
// by every Apply* operation.
//
// 🚀 What is a Point?
//
//	An N-dimensional coordinate/vector: position 0 is the first axis
//	(conventionally "x"). The dimension count is fixed at construction and
//	never changes for a given value; Extend and Contract produce brand-new
//	points, they never resize in place. Identity is structural: two points
//	are equal iff they have the same dimension count and pairwise-equal
//	elements (see Equal / EqualFunc).
//
// ✨ Key features:
//
//   - Constructors: New (owns its arguments), FromSlice (length-checked
//     copy), Fill (repeat one value N times)
//   - Two accessor styles: Get (bounds-checked, comma-ok) and At/Set
//     (panic on out-of-range, mirroring raw slice indexing)
//   - Named-axis sugar X/Y/Z/W + SetX/SetY/SetZ/SetW for dims 1..4
//   - Transform engine: Apply, ApplyAt, ApplyWith, ApplyPoint and the
//     failure-propagating TryApply/TryApplyWith — every variant preserves
//     length and element order, calls the modifier exactly once per
//     selected position, and demands no constraint on T beyond what the
//     modifier itself needs
//   - Whole-value resizing: Extend (append) and Contract (keep prefix)
//   - JSON and YAML codecs for the backing store
//
// ⚙️ Consuming semantics:
//
//	Apply*, Extend, Contract and IntoCoords consume the point: they take it
//	by value and take over its backing store. Treat the argument as
//	moved-from after the call — keep using only the returned value.
//
//	p := point.New(0, 1, 2)
//	q := point.Apply(p, func(v int) int { return v * v })
//	// use q; p must not be touched again
//
// Errors vs panics:
//
//	Length mismatches reachable from user data (FromSlice, ApplyWith,
//	ApplyPoint) return ErrDimensionMismatch and are matched via errors.Is.
//	Out-of-range indexing (At, Set, axis accessors, Contract) is a
//	programmer error and panics, exactly like indexing a raw slice.
//
// Performance:
//
//   - Every Apply* runs in O(N) modifier calls with O(N) transient scratch
//     space and O(1) overhead per element
//   - A zero-dimensional point is valid everywhere; transforms over it are
//     vacuous and never invoke the modifier
//
// See example_test.go for runnable walkthroughs.
package point
