package point

// Named-axis convenience accessors for low-dimensional points. They are
// plain positional aliases — X is position 0, Y is 1, Z is 2, W is 3 — and
// carry the same fatal out-of-range policy as At/Set: calling Y on a
// one-dimensional point panics.

// X returns the first element. Panics when the point has zero dimensions.
func (p Point[T]) X() T { return p.coords[AxisX] }

// Y returns the second element. Panics when the point has fewer than two
// dimensions.
func (p Point[T]) Y() T { return p.coords[AxisY] }

// Z returns the third element. Panics when the point has fewer than three
// dimensions.
func (p Point[T]) Z() T { return p.coords[AxisZ] }

// W returns the fourth element. Panics when the point has fewer than four
// dimensions.
func (p Point[T]) W() T { return p.coords[AxisW] }

// SetX replaces the first element in place. Panics when the point has zero
// dimensions.
func (p Point[T]) SetX(value T) { p.coords[AxisX] = value }

// SetY replaces the second element in place. Panics when the point has
// fewer than two dimensions.
func (p Point[T]) SetY(value T) { p.coords[AxisY] = value }

// SetZ replaces the third element in place. Panics when the point has fewer
// than three dimensions.
func (p Point[T]) SetZ(value T) { p.coords[AxisZ] = value }

// SetW replaces the fourth element in place. Panics when the point has
// fewer than four dimensions.
func (p Point[T]) SetW(value T) { p.coords[AxisW] = value }
