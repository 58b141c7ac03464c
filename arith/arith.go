package arith

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/pointnd/point"
)

// Number constrains point elements to the built-in numeric types. Each
// operation demands only this — no duplication, ordering or formatting
// capability is required of the element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add consumes a and b and returns their element-wise sum. Returns
// point.ErrDimensionMismatch when the operands differ in dimension count.
func Add[T Number](a, b point.Point[T]) (point.Point[T], error) {
	return point.ApplyPoint(a, b, func(x, y T) T { return x + y })
}

// Sub consumes a and b and returns their element-wise difference a[i]-b[i].
// Returns point.ErrDimensionMismatch when the operands differ in dimension
// count.
func Sub[T Number](a, b point.Point[T]) (point.Point[T], error) {
	return point.ApplyPoint(a, b, func(x, y T) T { return x - y })
}

// Mul consumes a and b and returns their element-wise product. Returns
// point.ErrDimensionMismatch when the operands differ in dimension count.
func Mul[T Number](a, b point.Point[T]) (point.Point[T], error) {
	return point.ApplyPoint(a, b, func(x, y T) T { return x * y })
}

// Div consumes a and b and returns the element-wise quotient a[i]/b[i].
// Returns point.ErrDimensionMismatch when the operands differ in dimension
// count. See the package doc for zero-divisor semantics.
func Div[T Number](a, b point.Point[T]) (point.Point[T], error) {
	return point.ApplyPoint(a, b, func(x, y T) T { return x / y })
}

// Neg consumes p and returns its element-wise negation. For unsigned
// integer elements the result wraps, as -x does in Go.
func Neg[T Number](p point.Point[T]) point.Point[T] {
	return point.Apply(p, func(x T) T { return -x })
}

// Scale consumes p and multiplies every element by factor.
func Scale[T Number](p point.Point[T], factor T) point.Point[T] {
	return point.Apply(p, func(x T) T { return x * factor })
}

// Shift consumes p and adds delta to the element on the named axis only; all
// other positions pass through unchanged. An axis beyond the point's
// dimension count is silently ignored, per the ApplyAt selection policy.
func Shift[T Number](p point.Point[T], axis point.Axis, delta T) point.Point[T] {
	return p.ApplyAt([]int{axis.Index()}, func(x T) T { return x + delta })
}
