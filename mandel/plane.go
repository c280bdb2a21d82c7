package mandel

import (
	"github.com/katalvlaran/lvlarr/array"
	"github.com/katalvlaran/lvlarr/ufunc"
)

// ReAxis returns n values linearly spaced over [min,max] as real parts,
// shaped (1,n) so it broadcasts along rows. n=1 yields just min.
// Returns ErrBadSamples if n < 1.
// Complexity: O(n).
func ReAxis(min, max float64, n int) (*array.Array, error) {
	if n < 1 {
		return nil, ErrBadSamples
	}
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(lerp(min, max, i, n), 0)
	}

	return array.New(array.Shape{1, n}, data)
}

// ImAxis returns n values linearly spaced over [min,max] as imaginary
// parts, shaped (n,1) so it broadcasts along columns. n=1 yields just min.
// Returns ErrBadSamples if n < 1.
// Complexity: O(n).
func ImAxis(min, max float64, n int) (*array.Array, error) {
	if n < 1 {
		return nil, ErrBadSamples
	}
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(0, lerp(min, max, i, n))
	}

	return array.New(array.Shape{n, 1}, data)
}

// Plane builds the (h,w) parameter grid covering the rectangle
// [re0,re1] × [im0,im1] by broadcasting an imaginary column against a real
// row, exactly the classic x + i·y construction. Row y, column x holds
// complex(re0+…, im0+…) with inclusive endpoints.
// Returns ErrBadSamples if w < 1 or h < 1.
// Complexity: O(w×h) time and memory.
func Plane(re0, re1, im0, im1 float64, w, h int) (*array.Array, error) {
	row, err := ReAxis(re0, re1, w)
	if err != nil {
		return nil, err
	}
	col, err := ImAxis(im0, im1, h)
	if err != nil {
		return nil, err
	}

	return ufunc.Apply(func(x, y complex128) complex128 { return x + y }, col, row, ufunc.DefaultOptions())
}

// lerp interpolates the i-th of n inclusive samples across [min,max].
func lerp(min, max float64, i, n int) float64 {
	if n == 1 {
		return min
	}

	return min + (max-min)*float64(i)/float64(n-1)
}
