// File: array/example_test.go
package array_test

import (
	"fmt"

	"github.com/katalvlaran/lvlarr/array"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BroadcastShapes
////////////////////////////////////////////////////////////////////////////////

// ExampleBroadcastShapes demonstrates the alignment rule on the shapes a
// parameter sweep typically combines: a column of imaginary parts against
// a row of real parts.
//
// Complexity: O(max rank)
func ExampleBroadcastShapes() {
	col := array.Shape{4, 1} // imaginary axis
	row := array.Shape{1, 3} // real axis

	out, err := array.BroadcastShapes(col, row)
	fmt.Println(out, err)

	_, err = array.BroadcastShapes(array.Shape{3, 4}, array.Shape{3, 5})
	fmt.Println(err != nil)

	// Output:
	// [4 3] <nil>
	// true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Broadcaster
////////////////////////////////////////////////////////////////////////////////

// ExampleNewBroadcaster resolves operand pairs for every coordinate of the
// broadcast output without materializing either expanded operand.
func ExampleNewBroadcaster() {
	col, _ := array.New(array.Shape{2, 1}, []complex128{1i, 2i})
	row, _ := array.New(array.Shape{1, 2}, []complex128{1, 2})

	br, _ := array.NewBroadcaster(col, row)
	for i := 0; i < br.Size(); i++ {
		x, y := br.Pair(i)
		fmt.Println(x + y)
	}

	// Output:
	// (1+1i)
	// (2+1i)
	// (1+2i)
	// (2+2i)
}
