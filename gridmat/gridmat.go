// SPDX-License-Identifier: MIT

// Package gridmat bridges float64 grids and gonum's mat package.
//
// A rank-2 grid and a mat.Dense with stride == cols share one layout (row-major,
// contiguous), so ToDense can wrap the grid buffer without copying. Rank-1 grids
// map onto mat.VecDense the same way. FromMatrix and FromVector always copy,
// since gonum values may be strided views.
package gridmat

import (
	"fmt"

	"github.com/katalvlaran/dyarr/grid"
	"gonum.org/v1/gonum/mat"
)

// ToDense returns g as a rows×cols *mat.Dense.
// Implementation:
//   - Stage 1: require rank 2 and non-zero dimensions.
//   - Stage 2: share or copy the buffer per options.
//   - Stage 3: wrap with mat.NewDense (stride == cols).
//
// Errors:
//   - ErrRank when g.Rank() != 2.
//   - ErrEmpty when either dimension is 0.
//
// Complexity:
//   - Time O(1) shared, O(N) with WithCopy.
func ToDense(g *grid.Grid[float64], opts ...Option) (*mat.Dense, error) {
	if g.Rank() != 2 {
		return nil, fmt.Errorf("gridmat.ToDense: shape %v: %w", g.Shape(), ErrRank)
	}
	r, c := g.Dim(0), g.Dim(1)
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("gridmat.ToDense: shape %v: %w", g.Shape(), ErrEmpty)
	}

	return mat.NewDense(r, c, buffer(g, gatherOptions(opts...))), nil
}

// ToVecDense returns a rank-1 grid as a *mat.VecDense.
//
// Errors:
//   - ErrRank when g.Rank() != 1.
//   - ErrEmpty when the grid has no elements.
func ToVecDense(g *grid.Grid[float64], opts ...Option) (*mat.VecDense, error) {
	if g.Rank() != 1 {
		return nil, fmt.Errorf("gridmat.ToVecDense: shape %v: %w", g.Shape(), ErrRank)
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("gridmat.ToVecDense: shape %v: %w", g.Shape(), ErrEmpty)
	}

	return mat.NewVecDense(g.Len(), buffer(g, gatherOptions(opts...))), nil
}

// FromMatrix copies m into a new rank-2 grid of shape [rows cols].
// Contiguous or strided raw matrices are copied row by row; other
// implementations go through At.
// Complexity: O(rows*cols).
func FromMatrix(m mat.Matrix) (*grid.Grid[float64], error) {
	r, c := m.Dims()
	buf := make([]float64, r*c)

	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i := 0; i < r; i++ {
			copy(buf[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				buf[i*c+j] = m.At(i, j)
			}
		}
	}

	return grid.FromRaw(buf, r, c)
}

// FromVector copies v into a new rank-1 grid.
// Complexity: O(len).
func FromVector(v mat.Vector) (*grid.Grid[float64], error) {
	n := v.Len()
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = v.AtVec(i)
	}

	return grid.FromRaw(buf, n)
}

// buffer returns the grid's live buffer or a copy of it.
func buffer(g *grid.Grid[float64], o Options) []float64 {
	if o.shareBuffer {
		return g.Data()
	}
	cp := make([]float64, g.Len())
	copy(cp, g.Data())

	return cp
}
