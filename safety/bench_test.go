package safety_test

import (
	"testing"

	"github.com/katalvlaran/stepsafe/safety"
)

// benchmarkReport builds a strictly increasing report of length n with a
// single flat step planted in the middle, so the direct check fails but a
// single deletion recovers safety.
func benchmarkReport(n int) safety.Report {
	r := make(safety.Report, n)
	for i := range r {
		r[i] = i // steps of 1, always in bounds
	}
	r[n/2] = r[n/2-1] // plant one flat step
	return r
}

// BenchmarkIsSafe benchmarks the single-pass check on a 100-element report.
func BenchmarkIsSafe(b *testing.B) {
	r := benchmarkReport(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		safety.IsSafe(r)
	}
}

// BenchmarkIsSafeWithOneRemoval benchmarks the quadratic removal search
// on a 100-element report with one planted fault.
func BenchmarkIsSafeWithOneRemoval(b *testing.B) {
	r := benchmarkReport(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		safety.IsSafeWithOneRemoval(r)
	}
}

// BenchmarkIsSafeWithOneRemoval_Hopeless benchmarks the worst case: no
// single deletion helps, so all n candidates are evaluated.
func BenchmarkIsSafeWithOneRemoval_Hopeless(b *testing.B) {
	r := make(safety.Report, 100)
	for i := range r {
		r[i] = (i % 2) * 10 // alternating 0/10, every step out of bounds
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		safety.IsSafeWithOneRemoval(r)
	}
}
