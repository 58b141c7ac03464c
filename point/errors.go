// Package point: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the point
// package. All fallible operations return these sentinels and tests check
// them via errors.Is. Panics are reserved for programmer errors
// (out-of-range indexing, Contract beyond bounds, internal scratch defects).

package point

import "errors"

var (
	// ErrDimensionMismatch indicates a length inconsistency reachable from
	// user data: FromSlice received a slice whose length differs from the
	// requested dimension count, or ApplyWith/ApplyPoint was given a paired
	// operand of a different length.
	ErrDimensionMismatch = errors.New("point: dimension mismatch")

	// ErrUnknownAxis indicates that ParseAxis received a name outside
	// {"x", "y", "z", "w"}.
	ErrUnknownAxis = errors.New("point: unknown axis name")
)
