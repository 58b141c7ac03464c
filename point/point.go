package point

import (
	"fmt"
	"strings"
)

// New builds a point directly from the given values, taking ownership of the
// variadic backing slice. Always succeeds; New() with no arguments yields a
// valid zero-dimensional point.
//
// Complexity: O(1) time, O(1) extra space (the argument slice becomes the
// backing store).
func New[T any](coords ...T) Point[T] {
	checkCeiling(len(coords), "New")
	return Point[T]{coords: coords}
}

// FromSlice copies exactly dims values out of the given slice into a fresh
// backing store. It returns ErrDimensionMismatch when len(values) != dims or
// dims < 0 — the caller must supply a slice of exactly the requested length.
//
// Complexity: O(N) time, O(N) space.
func FromSlice[T any](dims int, values []T) (Point[T], error) {
	if dims < 0 || len(values) != dims {
		return Point[T]{}, ErrDimensionMismatch
	}
	checkCeiling(dims, "FromSlice")
	coords := make([]T, dims)
	copy(coords, values)
	return Point[T]{coords: coords}, nil
}

// Fill builds a point of the given dimension count with every position set
// to value. Panics when dims is negative (programmer error); dims == 0 is a
// valid zero-dimensional point.
//
// Complexity: O(N) time, O(N) space.
func Fill[T any](dims int, value T) Point[T] {
	if dims < 0 {
		panic(fmt.Sprintf("point: Fill with negative dimension count %d", dims))
	}
	checkCeiling(dims, "Fill")
	coords := make([]T, dims)
	for i := range coords {
		coords[i] = value
	}
	return Point[T]{coords: coords}
}

// Dims returns the dimension count of the point. O(1), no side effects.
func (p Point[T]) Dims() int { return len(p.coords) }

// Get returns the element at position i and true, or the zero value of T and
// false when i is out of range. This is the bounds-checked, non-fatal
// counterpart of At.
func (p Point[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(p.coords) {
		var zero T
		return zero, false
	}
	return p.coords[i], true
}

// At returns the element at position i. Out-of-range access panics,
// mirroring raw slice indexing: it is a programming error, not a recoverable
// condition. Use Get for graceful handling.
func (p Point[T]) At(i int) T { return p.coords[i] }

// Set replaces the element at position i in place. Out-of-range access
// panics, mirroring raw slice indexing.
func (p Point[T]) Set(i int, value T) { p.coords[i] = value }

// IntoCoords consumes the point and returns its raw backing store without
// copying. The point must not be used after the call.
func (p Point[T]) IntoCoords() []T { return p.coords }

// Coords returns a fresh copy of the backing store, leaving the point
// untouched. Complexity: O(N) time and space.
func (p Point[T]) Coords() []T {
	out := make([]T, len(p.coords))
	copy(out, p.coords)
	return out
}

// Equal reports structural equality: same dimension count and pairwise-equal
// elements. Two zero-dimensional points are equal. Complexity: O(N).
func Equal[T comparable](a, b Point[T]) bool {
	if len(a.coords) != len(b.coords) {
		return false
	}
	for i := range a.coords {
		if a.coords[i] != b.coords[i] {
			return false
		}
	}
	return true
}

// EqualFunc reports structural equality under a caller-supplied element
// comparison, for element types that are not comparable (or points of
// different element types). Complexity: O(N) calls to eq.
func EqualFunc[T, V any](a Point[T], b Point[V], eq func(T, V) bool) bool {
	if len(a.coords) != len(b.coords) {
		return false
	}
	for i := range a.coords {
		if !eq(a.coords[i], b.coords[i]) {
			return false
		}
	}
	return true
}

// String renders the point as "(v0, v1, ..., vN-1)" for debugging.
func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// checkCeiling enforces the MaxDims pre-flight policy shared by all
// constructors and the transform engine. Exceeding the ceiling is fatal:
// it can only arise from a runaway dimension count, never from well-formed
// calling code.
func checkCeiling(dims int, op string) {
	if uint64(dims) > MaxDims {
		panic(fmt.Sprintf("point: %s on %d dimensions exceeds the MaxDims ceiling (%d)", op, dims, uint64(MaxDims)))
	}
}
