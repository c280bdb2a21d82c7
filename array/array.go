package array

// New constructs an Array with the given shape from row-major data.
// The shape and data are deep-copied to ensure immutability.
// Returns ErrNegativeDim for invalid shapes,
// ErrLengthMismatch if len(data) != shape.Size().
// Complexity: O(size) time and memory.
func New(shape Shape, data []complex128) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, ErrLengthMismatch
	}
	buf := make([]complex128, len(data))
	copy(buf, data)

	return &Array{shape: shape.Clone(), strides: shape.Strides(), data: buf}, nil
}

// Zeros constructs an Array of the given shape with every element 0+0i.
// Complexity: O(size) time and memory.
func Zeros(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Array{shape: shape.Clone(), strides: shape.Strides(), data: make([]complex128, shape.Size())}, nil
}

// Full constructs an Array of the given shape with every element set to v.
// Complexity: O(size) time and memory.
func Full(shape Shape, v complex128) (*Array, error) {
	out, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = v
	}

	return out, nil
}

// Scalar constructs a rank-0 Array holding the single value v.
// A scalar broadcasts against any other shape.
// Complexity: O(1).
func Scalar(v complex128) *Array {
	return &Array{shape: Shape{}, strides: []int{}, data: []complex128{v}}
}

// FromSlice constructs a rank-1 Array from a copy of values.
// Returns ErrNegativeDim if values is empty.
// Complexity: O(len) time and memory.
func FromSlice(values []complex128) (*Array, error) {
	return New(Shape{len(values)}, values)
}

// From2D constructs a rank-2 Array from a rectangular 2D slice.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrRaggedGrid if any row length differs.
// Complexity: O(rows×cols) time and memory.
func From2D(rows [][]complex128) (*Array, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	buf := make([]complex128, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedGrid
		}
		buf = append(buf, row...)
	}

	return &Array{shape: Shape{h, w}, strides: Shape{h, w}.Strides(), data: buf}, nil
}

// Shape returns a copy of the array's shape.
// Complexity: O(rank).
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Rank returns the number of dimensions; 0 for a scalar.
// Complexity: O(1).
func (a *Array) Rank() int {
	return len(a.shape)
}

// Size returns the total number of elements.
// Complexity: O(1).
func (a *Array) Size() int {
	return len(a.data)
}

// At returns the element at the given coordinates, one per dimension.
// A scalar is read with no coordinates.
// Returns ErrIndexOutOfRange on wrong arity or out-of-bounds coordinates.
// Complexity: O(rank).
func (a *Array) At(coords ...int) (complex128, error) {
	if len(coords) != len(a.shape) {
		return 0, ErrIndexOutOfRange
	}
	idx := 0
	for d, c := range coords {
		if c < 0 || c >= a.shape[d] {
			return 0, ErrIndexOutOfRange
		}
		idx += c * a.strides[d]
	}

	return a.data[idx], nil
}

// AtIndex returns the element at row-major linear index i.
// Complexity: O(1).
func (a *Array) AtIndex(i int) (complex128, error) {
	if i < 0 || i >= len(a.data) {
		return 0, ErrIndexOutOfRange
	}

	return a.data[i], nil
}

// Data returns a copy of the row-major element buffer.
// Complexity: O(size).
func (a *Array) Data() []complex128 {
	out := make([]complex128, len(a.data))
	copy(out, a.data)

	return out
}

// Equal reports whether two arrays have identical shapes and elements.
// Elements are compared with ==, so NaN components compare unequal.
// Complexity: O(size).
func (a *Array) Equal(other *Array) bool {
	if other == nil || !a.shape.Equal(other.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
