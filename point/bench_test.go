package point_test

import (
	"testing"

	"github.com/katalvlaran/pointnd/point"
)

// benchmarkApply runs Apply over an n-dimensional point per iteration.
// Construction happens inside the loop because Apply consumes its argument.
func benchmarkApply(b *testing.B, n int) {
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := point.FromSlice(n, src)
		if err != nil {
			b.Fatalf("FromSlice failed: %v", err)
		}
		_ = point.Apply(p, func(v int) int { return v * 2 })
	}
}

// BenchmarkApply_Small benchmarks a typical low-dimensional point.
func BenchmarkApply_Small(b *testing.B) { benchmarkApply(b, 4) }

// BenchmarkApply_Medium benchmarks a 64-dimensional point.
func BenchmarkApply_Medium(b *testing.B) { benchmarkApply(b, 64) }

// BenchmarkApply_Large benchmarks a 4096-dimensional point.
func BenchmarkApply_Large(b *testing.B) { benchmarkApply(b, 4096) }

// BenchmarkApplyAt benchmarks selective transformation: a quarter of the
// positions selected out of 1024.
func BenchmarkApplyAt(b *testing.B) {
	const n = 1024
	src := make([]int, n)
	indices := make([]int, 0, n/4)
	for i := range src {
		src[i] = i
		if i%4 == 0 {
			indices = append(indices, i)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := point.FromSlice(n, src)
		if err != nil {
			b.Fatalf("FromSlice failed: %v", err)
		}
		_ = p.ApplyAt(indices, func(v int) int { return v + 1 })
	}
}

// BenchmarkApplyPoint benchmarks the binary paired transform on
// 1024-dimensional operands.
func BenchmarkApplyPoint(b *testing.B) {
	const n = 1024
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pa, err := point.FromSlice(n, src)
		if err != nil {
			b.Fatalf("FromSlice failed: %v", err)
		}
		pb, err := point.FromSlice(n, src)
		if err != nil {
			b.Fatalf("FromSlice failed: %v", err)
		}
		if _, err = point.ApplyPoint(pa, pb, func(x, y int) int { return x + y }); err != nil {
			b.Fatalf("ApplyPoint failed: %v", err)
		}
	}
}
