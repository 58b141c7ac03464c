// Package point: the Point container, axis naming and the modifier function
// types accepted by the transform engine.

package point

import "strconv"

// MaxDims is the hard ceiling on the dimension count of any Point. The
// transform engine checks it up front, before entering its per-element loop,
// so an oversized request fails fast instead of mid-assembly. The value
// matches a 32-bit element counter.
const MaxDims = 1<<32 - 1

// Point is an ordered, fixed-length tuple of N values of type T —
// semantically a coordinate in N-dimensional space. The dimension count is
// fixed at construction; operations that change it (Extend, Contract) build
// a brand-new value.
//
// The zero value is a valid zero-dimensional point.
//
// Point has exclusive, move-style ownership of its backing store: passing it
// into an Apply*/Extend/Contract call or IntoCoords transfers the store away
// from the caller. There is no locking — a Point must not be shared between
// goroutines while any binding can still mutate it via Set.
type Point[T any] struct {
	coords []T
}

// Axis names a position within a point, for points of up to four dimensions.
// It replaces magic indices in call sites: p.At(AxisZ.Index()) reads better
// than p.At(2) and costs nothing at runtime.
type Axis int

const (
	// AxisX is the first axis (index 0).
	AxisX Axis = iota
	// AxisY is the second axis (index 1).
	AxisY
	// AxisZ is the third axis (index 2).
	AxisZ
	// AxisW is the fourth axis (index 3).
	AxisW
)

// Index returns the positional index of the axis. O(1), never panics.
func (a Axis) Index() int { return int(a) }

// String returns the conventional lowercase axis name, or "axis(n)" for
// values outside AxisX..AxisW.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	}
	return "axis(" + strconv.Itoa(int(a)) + ")"
}

// ParseAxis resolves a symbolic axis name ("x", "y", "z" or "w") to its
// Axis constant. Any other name yields ErrUnknownAxis.
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	case "w":
		return AxisW, nil
	}
	return 0, ErrUnknownAxis
}

// ApplyFunc maps one element to one output element; Apply calls it exactly
// once per position, in ascending position order.
type ApplyFunc[T, U any] func(T) U

// ApplyAtFunc maps one element to a replacement of the SAME type; ApplyAt
// cannot change the element type because unselected positions pass through
// unchanged.
type ApplyAtFunc[T any] func(T) T

// ApplyWithFunc maps a (point element, paired value) pair to one output
// element; used by ApplyWith and ApplyPoint.
type ApplyWithFunc[T, V, U any] func(T, V) U

// TryApplyFunc is the failure-capable form of ApplyFunc: returning a non-nil
// error aborts the transform, and the error is propagated to the caller.
type TryApplyFunc[T, U any] func(T) (U, error)

// TryApplyWithFunc is the failure-capable form of ApplyWithFunc.
type TryApplyWithFunc[T, V, U any] func(T, V) (U, error)
