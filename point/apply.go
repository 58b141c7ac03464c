// Package point: the element-wise transform engine.
//
// Purpose:
//   - One reusable assembly protocol shared by every Apply* operation:
//     consume the source point(s), walk positions 0..N-1 in ascending order,
//     invoke the modifier exactly once per selected position, and seal the
//     collected results into the backing store of a new point of the same
//     length.
//
// Design:
//   - Collection goes through a bounded scratch buffer with an explicit
//     pre-flight capacity check (MaxDims) and an exactly-N seal invariant.
//     A seal mismatch is a bookkeeping defect inside this package — it
//     panics and must never be reachable from calling code.
//   - Elements transfer into the modifier by value, single-ownership style:
//     no duplication or default-construction demand is placed on T.
//   - Deterministic: fixed 0..N-1 loop order, no skipping, no re-invocation.

package point

import "fmt"

// scratch is the transient collection buffer used by every apply kernel.
// It is local to one call and is released as soon as the new point is
// constructed or the call fails.
type scratch[U any] struct {
	buf  []U
	want int
}

// newScratch allocates a buffer for exactly want elements, after the
// pre-flight ceiling check. The check runs before any per-element work so a
// capacity violation is reported up front, never mid-loop.
func newScratch[U any](want int, op string) scratch[U] {
	checkCeiling(want, op)
	return scratch[U]{buf: make([]U, 0, want), want: want}
}

// push appends one transformed element.
func (s *scratch[U]) push(v U) { s.buf = append(s.buf, v) }

// seal converts the buffer into the final backing store. A count mismatch
// here means the position bookkeeping in this package is broken; the panic
// must never fire under correct bookkeeping.
func (s *scratch[U]) seal(op string) []U {
	if len(s.buf) != s.want {
		panic(fmt.Sprintf("point: %s sealed %d of %d elements; this is a defect in pointnd, please report it", op, len(s.buf), s.want))
	}
	return s.buf
}

// Apply consumes p and calls the modifier on every element, in position
// order, to build a new point of the same length. The output element type
// may differ from the input's:
//
//	q := point.Apply(point.New(0, 1, 2), func(v int) float64 { return float64(v) / 2 })
//	// q holds (0, 0.5, 1)
//
// Complexity: O(N) modifier calls, O(N) scratch space.
func Apply[T, U any](p Point[T], modifier ApplyFunc[T, U]) Point[U] {
	s := newScratch[U](len(p.coords), "Apply")
	for i := 0; i < len(p.coords); i++ {
		s.push(modifier(p.coords[i]))
	}
	return Point[U]{coords: s.seal("Apply")}
}

// ApplyAt consumes p and calls the modifier only on the positions listed in
// indices; every other element passes through unchanged. Unlike Apply, the
// element type cannot change — there is no modifier to produce the new type
// for untouched slots.
//
// Selection-list policy:
//   - out-of-range entries are silently ignored, never an error;
//   - duplicate entries are deduplicated — the modifier runs at most once
//     per position, regardless of how often its index is listed.
//
// Complexity: O(N + len(indices)) time, O(N) space for the selection mask;
// the stolen backing store is updated in place, so no second store is
// allocated.
func (p Point[T]) ApplyAt(indices []int, modifier ApplyAtFunc[T]) Point[T] {
	n := len(p.coords)
	selected := make([]bool, n)
	for _, i := range indices {
		if i >= 0 && i < n {
			selected[i] = true
		}
	}
	for i := 0; i < n; i++ {
		if selected[i] {
			p.coords[i] = modifier(p.coords[i])
		}
	}
	return Point[T]{coords: p.coords}
}

// ApplyWith consumes p and pairs each element with the value at the same
// position of values, calling the modifier once per position in ascending
// order. The point's element is passed first, the paired value second. The
// paired slice must have exactly N elements; any other length yields
// ErrDimensionMismatch before the loop starts.
//
// Complexity: O(N) modifier calls, O(N) scratch space.
func ApplyWith[T, V, U any](p Point[T], values []V, modifier ApplyWithFunc[T, V, U]) (Point[U], error) {
	n := len(p.coords)
	if len(values) != n {
		return Point[U]{}, ErrDimensionMismatch
	}
	s := newScratch[U](n, "ApplyWith")
	for i := 0; i < n; i++ {
		s.push(modifier(p.coords[i], values[i]))
	}
	return Point[U]{coords: s.seal("ApplyWith")}, nil
}

// ApplyPoint consumes both p and other, pairing elements by position. It
// delegates to ApplyWith using other's backing store, so the same length
// policy applies: a dimension mismatch yields ErrDimensionMismatch.
//
// Complexity: O(N) modifier calls, O(N) scratch space.
func ApplyPoint[T, V, U any](p Point[T], other Point[V], modifier ApplyWithFunc[T, V, U]) (Point[U], error) {
	return ApplyWith(p, other.IntoCoords(), modifier)
}

// TryApply is Apply for modifiers that can fail. The first non-nil modifier
// error aborts the transform: no partial point is returned, and the error is
// wrapped with the failing position so errors.Is still matches the
// modifier's sentinel.
//
// Complexity: O(N) modifier calls worst case, O(N) scratch space.
func TryApply[T, U any](p Point[T], modifier TryApplyFunc[T, U]) (Point[U], error) {
	n := len(p.coords)
	s := newScratch[U](n, "TryApply")
	for i := 0; i < n; i++ {
		v, err := modifier(p.coords[i])
		if err != nil {
			return Point[U]{}, fmt.Errorf("point: TryApply at position %d: %w", i, err)
		}
		s.push(v)
	}
	return Point[U]{coords: s.seal("TryApply")}, nil
}

// TryApplyWith is ApplyWith for modifiers that can fail, with the same
// length policy and the same first-failure abort as TryApply.
//
// Complexity: O(N) modifier calls worst case, O(N) scratch space.
func TryApplyWith[T, V, U any](p Point[T], values []V, modifier TryApplyWithFunc[T, V, U]) (Point[U], error) {
	n := len(p.coords)
	if len(values) != n {
		return Point[U]{}, ErrDimensionMismatch
	}
	s := newScratch[U](n, "TryApplyWith")
	for i := 0; i < n; i++ {
		v, err := modifier(p.coords[i], values[i])
		if err != nil {
			return Point[U]{}, fmt.Errorf("point: TryApplyWith at position %d: %w", i, err)
		}
		s.push(v)
	}
	return Point[U]{coords: s.seal("TryApplyWith")}, nil
}
