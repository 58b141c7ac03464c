package point

import "fmt"

// Extend consumes p and appends the extra values after its existing
// elements, preserving order, to build a point of dims N+L. Extending a
// zero-dimensional point is the idiomatic way to build a point up
// incrementally. The MaxDims ceiling is checked up front, before any element
// moves.
//
// Complexity: O(N+L) time and space.
func Extend[T any](p Point[T], extra ...T) Point[T] {
	n, l := len(p.coords), len(extra)
	s := newScratch[T](n+l, "Extend")
	for i := 0; i < n; i++ {
		s.push(p.coords[i])
	}
	for i := 0; i < l; i++ {
		s.push(extra[i])
	}
	return Point[T]{coords: s.seal("Extend")}
}

// Contract consumes p and keeps only its first dims elements, discarding the
// trailing ones. Requesting more dimensions than the point has (or a
// negative count) panics, mirroring slice-expression semantics — it is a
// programming error, not a recoverable condition. Contract(0) yields a valid
// zero-dimensional point.
//
// The kept prefix is copied into a fresh backing store so the discarded tail
// does not stay reachable through the new point.
//
// Complexity: O(dims) time and space.
func (p Point[T]) Contract(dims int) Point[T] {
	if dims < 0 || dims > len(p.coords) {
		panic(fmt.Sprintf("point: Contract to %d dimensions, have %d", dims, len(p.coords)))
	}
	s := newScratch[T](dims, "Contract")
	for i := 0; i < dims; i++ {
		s.push(p.coords[i])
	}
	return Point[T]{coords: s.seal("Contract")}
}
