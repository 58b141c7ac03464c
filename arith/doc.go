// Package arith provides element-wise arithmetic over point.Point values
// with numeric elements: Add, Sub, Mul, Div, Neg, Scale and single-axis
// Shift.
//
// 🚀 What is arith?
//
//	A thin consumer of the point transform engine. Every operation is a
//	position-paired map: result[i] = a[i] OP b[i] (or OP scalar), built via
//	point.ApplyPoint / point.Apply / Point.ApplyAt, so all engine
//	guarantees carry over — length preservation, strict position order,
//	consuming semantics.
//
// ⚙️ Usage:
//
//	sum, err := arith.Add(point.New(1, 2, 3), point.New(10, 20, 30))
//	// sum holds (11, 22, 33)
//
// Errors:
//
//	Binary operations on points of differing dimension counts return
//	point.ErrDimensionMismatch (check with errors.Is). Unary operations
//	never fail.
//
// ⚠️ Division note:
//
//	Div maps Go's native division semantics: integer division by a zero
//	element panics (runtime error), floating-point division by zero yields
//	±Inf or NaN. Callers needing a policy around zero divisors should
//	pre-screen operands or use point.TryApplyWith directly.
//
// Complexity: every operation is O(N) with O(N) transient space.
package arith
