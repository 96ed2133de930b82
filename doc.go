// Package dyarr is a small toolkit for row-major N-dimensional arrays held
// in a single flat buffer.
//
// What is in the box?
//
//	grid/    — Grid[T]: shape + flat buffer, checked offsets, indexed access
//	gridmat/ — bridges float64 grids to gonum mat.Dense / mat.VecDense
//
// Why a flat buffer?
//
//   - One allocation, cache-friendly scans over Data()
//   - Offsets are plain integer math (last dimension fastest)
//   - The buffer can be handed to other libraries without copying
//
// Quick example:
//
//	g := grid.New(0, 3, 4, 5) // 60 zeros
//	g.Set(1, 2, 3, 4)         // offset 59
//	off, _ := g.Offset(-1, -3) // -8: trailing dims only, not normalized
//
//	go get github.com/katalvlaran/dyarr
package dyarr
