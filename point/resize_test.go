package point_test

import (
	"testing"

	"github.com/katalvlaran/pointnd/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtend_FromZero reproduces scenario 5: extending a 0-dim point by
// [0,1] yields a 2-dim point holding [0,1].
func TestExtend_FromZero(t *testing.T) {
	p := point.Extend(point.New[int](), 0, 1)

	require.Equal(t, 2, p.Dims())
	assert.Equal(t, []int{0, 1}, p.IntoCoords())
}

// TestExtend_AppendsAfterExisting verifies order: existing elements first,
// extras after, nothing reordered.
func TestExtend_AppendsAfterExisting(t *testing.T) {
	p := point.Extend(point.New(0, 1, 2), 3, 4)

	require.Equal(t, 5, p.Dims())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.IntoCoords())
}

// TestExtend_Nothing verifies the degenerate L=0 case.
func TestExtend_Nothing(t *testing.T) {
	p := point.Extend(point.New(7, 8))
	assert.Equal(t, []int{7, 8}, p.IntoCoords(), "extending by nothing must preserve the point")

	empty := point.Extend(point.New[int]())
	assert.Equal(t, 0, empty.Dims(), "0-dim extended by nothing stays 0-dim")
}

// TestExtend_Incremental builds a point up from nothing, the build-up
// pattern the zero-dimension policy exists for.
func TestExtend_Incremental(t *testing.T) {
	p := point.New[int]()
	for i := 0; i < 4; i++ {
		p = point.Extend(p, i)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, p.IntoCoords())
}

// TestContract_KeepsPrefix reproduces scenario 6: contracting [0,1,2,3] to 2
// dims keeps [0,1].
func TestContract_KeepsPrefix(t *testing.T) {
	p := point.New(0, 1, 2, 3).Contract(2)

	require.Equal(t, 2, p.Dims())
	assert.Equal(t, []int{0, 1}, p.IntoCoords())
}

// TestContract_ToZeroAndFull covers both boundary dims values.
func TestContract_ToZeroAndFull(t *testing.T) {
	empty := point.New(0, 1, 2).Contract(0)
	assert.Equal(t, 0, empty.Dims(), "Contract(0) must yield a valid 0-dim point")

	full := point.New(0, 1, 2).Contract(3)
	assert.Equal(t, []int{0, 1, 2}, full.IntoCoords(), "Contract(N) must keep everything")
}

// TestContract_OutOfRangeIsFatal verifies the fatal policy: asking for more
// dimensions than exist, or a negative count, panics like a bad slice
// expression.
func TestContract_OutOfRangeIsFatal(t *testing.T) {
	assert.Panics(t, func() { point.New(0, 1, 2, 3).Contract(1000) }, "Contract beyond dims must panic")
	assert.Panics(t, func() { point.New(0, 1, 2, 3).Contract(-1) }, "Contract to negative dims must panic")
}

// TestContract_FreshBackingStore verifies the kept prefix is copied: writing
// through the contracted point must not touch the source store.
func TestContract_FreshBackingStore(t *testing.T) {
	src := point.New(0, 1, 2, 3)
	kept := src.Contract(2)
	kept.Set(0, 42)

	// src was consumed, but its old store must be physically separate.
	v, ok := src.Get(0)
	require.True(t, ok)
	assert.Equal(t, 0, v, "contracted point must own a fresh store")
}
