// File: grid/example_test.go
package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dyarr/grid"
)

// ExampleNew builds a 3-D grid, writes through coordinates and reads back.
func ExampleNew() {
	g := grid.New(42, 2, 3, 5)
	g.Set(-g.At(1, 0, 2), 1, 0, 2)

	fmt.Println("shape:", g.Shape(), "len:", g.Len())
	fmt.Println("g[1,0,2] =", g.At(1, 0, 2))
	fmt.Println("g[1,0,3] =", g.At(1, 0, 3))

	// Output:
	// shape: [2 3 5] len: 30
	// g[1,0,2] = -42
	// g[1,0,3] = 42
}

// ExampleFromRaw wraps a row-major buffer; the length is checked against the shape.
func ExampleFromRaw() {
	data := make([]int, 24)
	for i := range data {
		data[i] = i
	}

	_, err := grid.FromRaw(append([]int(nil), data...), 3, 4, 5)
	fmt.Println("mismatch:", errors.Is(err, grid.ErrShapeMismatch))

	g, _ := grid.FromRaw(data, 2, 3, 4)
	fmt.Println("raw[7] =", g.Data()[7], "rank =", g.Rank())

	// Output:
	// mismatch: true
	// raw[7] = 7 rank = 3
}

// ExampleGrid_Offset shows the signed, rank-tolerant offset.
func ExampleGrid_Offset() {
	g := grid.New(0, 2, 3, 4)

	full, _ := g.Offset(1, 2, 3)
	neg, _ := g.Offset(-1, -2, -3)
	short, _ := g.Offset(3) // leading dimensions count as 0
	_, err := g.Offset(0, 0, 4)

	fmt.Println(full, neg, short)
	fmt.Println(errors.Is(err, grid.ErrOutOfBound))

	// Output:
	// 23 -23 3
	// true
}

// ExampleGrid_TryAt reports a rank mismatch instead of panicking like At.
func ExampleGrid_TryAt() {
	g := grid.New(0, 2, 3, 5)

	_, err := g.TryAt(1, 2)
	fmt.Println(err)

	// Output:
	// Grid.TryAt(1,2): got 2 indices for rank 3: grid: bad length of indices
}

// ExampleGrid_String renders a small matrix.
func ExampleGrid_String() {
	g, _ := grid.FromRaw([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	fmt.Println(g)

	// Output:
	// [[1, 2, 3], [4, 5, 6]]
}
