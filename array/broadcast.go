package array

import "fmt"

// BroadcastShapes computes the broadcast shape of a and b.
//
// Shapes are aligned right-to-left. For each aligned dimension the sizes
// must be equal, or one of them must be 1, or the dimension may be absent
// in the shorter shape (treated as 1). The broadcast dimension is the
// larger of the two sizes.
//
// Examples:
//
//	(1000,)  with (1000,1000) → (1000,1000)
//	(n,1)    with (1,m)       → (n,m)
//	()       with anything    → the other shape
//	(3,4)    with (3,5)       → ErrShapeMismatch
//
// Returns a shape of the maximum rank, or an error wrapping
// ErrShapeMismatch naming the offending dimension.
// Complexity: O(max rank) time and memory.
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make(Shape, rank)
	for i := 0; i < rank; i++ {
		ad, bd := 1, 1
		if j := len(a) - rank + i; j >= 0 {
			ad = a[j]
		}
		if j := len(b) - rank + i; j >= 0 {
			bd = b[j]
		}
		switch {
		case ad == bd, bd == 1:
			out[i] = ad
		case ad == 1:
			out[i] = bd
		default:
			return nil, fmt.Errorf("cannot broadcast %v with %v (dimension %d: %d vs %d): %w",
				a, b, i, ad, bd, ErrShapeMismatch)
		}
	}

	return out, nil
}

// Broadcaster resolves operand elements for every coordinate of the
// broadcast output shape of two arrays. It is read-only and safe for
// concurrent use by multiple goroutines.
type Broadcaster struct {
	out        Shape
	outStrides []int
	aShape     Shape // left operand shape, padded to output rank
	bShape     Shape // right operand shape, padded to output rank
	aStrides   []int
	bStrides   []int
	aData      []complex128
	bData      []complex128
}

// NewBroadcaster validates that a and b are broadcast-compatible and
// prepares padded shapes and strides for coordinate resolution.
// Returns ErrNilArray for nil operands, ErrShapeMismatch (wrapped) for
// incompatible shapes.
// Complexity: O(max rank) time and memory.
func NewBroadcaster(a, b *Array) (*Broadcaster, error) {
	if a == nil || b == nil {
		return nil, ErrNilArray
	}
	out, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	aPad := padShape(a.shape, len(out))
	bPad := padShape(b.shape, len(out))

	return &Broadcaster{
		out:        out,
		outStrides: out.Strides(),
		aShape:     aPad,
		bShape:     bPad,
		aStrides:   aPad.Strides(),
		bStrides:   bPad.Strides(),
		aData:      a.data,
		bData:      b.data,
	}, nil
}

// OutShape returns a copy of the broadcast output shape.
// Complexity: O(rank).
func (br *Broadcaster) OutShape() Shape {
	return br.out.Clone()
}

// Size returns the number of elements in the broadcast output.
// Complexity: O(1).
func (br *Broadcaster) Size() int {
	return br.out.Size()
}

// Pair returns the elements of both operands resolved for the row-major
// output index i. Dimensions of size 1 reuse their single value; absent
// dimensions reuse the whole operand. i must be in [0, Size()).
// Complexity: O(rank), zero allocations.
func (br *Broadcaster) Pair(i int) (x, y complex128) {
	rem := i
	offA, offB := 0, 0
	for d := range br.outStrides {
		c := rem / br.outStrides[d]
		rem %= br.outStrides[d]
		if br.aShape[d] != 1 {
			offA += c * br.aStrides[d]
		}
		if br.bShape[d] != 1 {
			offB += c * br.bStrides[d]
		}
	}

	return br.aData[offA], br.bData[offB]
}

// padShape left-pads a shape with 1s up to the requested rank.
func padShape(s Shape, rank int) Shape {
	if len(s) == rank {
		return s.Clone()
	}
	out := make(Shape, rank)
	pad := rank - len(s)
	for i := 0; i < pad; i++ {
		out[i] = 1
	}
	copy(out[pad:], s)

	return out
}
