// Package pointnd is a tiny, generic library for fixed-dimensional
// points/vectors — an owned, ordered tuple of N homogeneous values with
// constructors, indexed access and an element-wise transform engine.
//
// 🚀 What is pointnd?
//
//	A value-type primitive, not an application: no concurrency, no I/O,
//	no persisted state. A Point is just a fixed-length backing store with
//	convenience methods for reading, writing and — most importantly —
//	transforming every element into a brand-new point, possibly of a
//	different element type but always of the same length.
//
// ✨ Why choose pointnd?
//
//   - Minimal API, clear naming: New, FromSlice, Fill, Apply, ApplyAt,
//     ApplyWith, ApplyPoint, Extend, Contract
//   - Capability-per-operation generics — no blanket constraints on the
//     element type; each operation demands only what its modifier needs
//   - Deterministic element order on every operation
//   - Pure Go core — the only runtime import of the point package is yaml
//     for the optional codec surface
//
// Everything is organized under two subpackages:
//
//	point/ — the Point[T] container, named-axis sugar, the element-wise
//	         transform engine and JSON/YAML codecs
//	arith/ — element-wise arithmetic (Add, Sub, Mul, Div, Neg, Scale,
//	         Shift) built on top of the transform engine
//
// Quick example:
//
//	p := point.New(0, 1, 2)
//	p = point.Apply(p, func(v int) int { return v + 2 })
//	p = point.Apply(p, func(v int) int { return v * 3 })
//	// p now holds (6, 9, 12)
//
// See each subpackage's doc.go for details, invariants and complexity notes.
package pointnd
