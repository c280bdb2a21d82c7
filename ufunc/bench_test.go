package ufunc_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/lvlarr/array"
	"github.com/katalvlaran/lvlarr/ufunc"
)

// benchPlane builds the (n,1) and (1,n) axes of an n×n broadcast sweep.
func benchPlane(b *testing.B, n int) (*array.Array, *array.Array) {
	b.Helper()
	colData := make([]complex128, n)
	rowData := make([]complex128, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		colData[i] = complex(0, -1.5+3.0*t)
		rowData[i] = complex(-2.0+3.0*t, 0)
	}
	col, err := array.New(array.Shape{n, 1}, colData)
	if err != nil {
		b.Fatalf("setup column failed: %v", err)
	}
	row, err := array.New(array.Shape{1, n}, rowData)
	if err != nil {
		b.Fatalf("setup row failed: %v", err)
	}

	return col, row
}

// BenchmarkApply_Sequential measures single-goroutine broadcast application
// of a cheap kernel over a 512×512 output.
func BenchmarkApply_Sequential(b *testing.B) {
	col, row := benchPlane(b, 512)
	k := func(x, y complex128) complex128 { return x*y + y }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ufunc.Apply(k, col, row, ufunc.Options{Workers: 1}); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkApply_Parallel measures the same application partitioned across
// all CPUs. Outputs are identical to the sequential run.
func BenchmarkApply_Parallel(b *testing.B) {
	col, row := benchPlane(b, 512)
	k := func(x, y complex128) complex128 { return x*y + y }
	opts := ufunc.Options{Workers: runtime.NumCPU()}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ufunc.Apply(k, col, row, opts); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}
