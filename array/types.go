// Package array defines core types and sentinel errors for the array
// subpackage of github.com/katalvlaran/lvlarr.
package array

// Shape lists the dimension sizes of an Array, outermost first.
// The empty Shape describes a scalar: rank 0, size 1.
type Shape []int

// Size returns the total number of elements described by the shape.
// The empty shape has size 1 (a scalar).
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}

	return n
}

// Validate reports ErrNegativeDim if any dimension is zero or negative.
// Complexity: O(rank).
func (s Shape) Validate() error {
	for _, dim := range s {
		if dim < 1 {
			return ErrNegativeDim
		}
	}

	return nil
}

// Equal reports whether two shapes have identical rank and sizes.
// Complexity: O(rank).
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the shape.
// Complexity: O(rank).
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Strides returns the row-major stride of each dimension:
// strides[i] is the linear distance between neighbors along dimension i.
// Complexity: O(rank).
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}

	return strides
}

// Array is a rectangular, row-major collection of complex128 values with a
// declared Shape. It is immutable once built: constructors deep-copy their
// inputs and accessors never expose the internal buffer.
type Array struct {
	shape   Shape
	strides []int
	data    []complex128
}
