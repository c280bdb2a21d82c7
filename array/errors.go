package array

import "errors"

// Sentinel errors for array construction, access and broadcasting.
var (
	// ErrNegativeDim indicates a shape dimension that is zero or negative.
	ErrNegativeDim = errors.New("array: shape dimensions must be positive")
	// ErrLengthMismatch indicates data whose length differs from the shape's size.
	ErrLengthMismatch = errors.New("array: data length does not match shape size")
	// ErrEmptyGrid indicates a 2D input with no rows or no columns.
	ErrEmptyGrid = errors.New("array: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates 2D input rows of differing lengths.
	ErrRaggedGrid = errors.New("array: all rows must have the same length")
	// ErrIndexOutOfRange indicates a coordinate or linear index outside the array.
	ErrIndexOutOfRange = errors.New("array: index out of range")
	// ErrShapeMismatch indicates two shapes that are not broadcast-compatible.
	ErrShapeMismatch = errors.New("array: shapes are not broadcast-compatible")
	// ErrNilArray indicates a nil *Array operand.
	ErrNilArray = errors.New("array: operand must be non-nil")
)
