// SPDX-License-Identifier: MIT

// Package grid - Dense N-dimensional storage (row-major) over a flat buffer.
//
// Purpose:
//   - Hold a contiguous buffer plus a shape whose product equals the buffer length.
//   - Validate shape/length consistency once, at construction.
//   - Expose the flat buffer for bulk processing without per-element index math.
//
// Complexity quicksheet:
//   - New: O(N) fill; FromRaw: O(rank); Data/Len/Rank: O(1); Shape/Strides: O(rank);
//     Clone: O(N + rank).

package grid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Grid is a row-major N-dimensional array.
//   - data is the flat buffer, len(data) == product(shape).
//   - shape holds the dimension sizes; an empty shape is a rank-0 grid with one element.
//
// Grid performs no synchronization: concurrent readers are safe only while
// no goroutine writes through Set, Ptr, TrySet or Data.
type Grid[T any] struct {
	data  []T   // contiguous row-major storage
	shape []int // dimension sizes, owned (never aliased with callers)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New allocates a grid of the given shape with every slot set to fill.
// MAIN DESCRIPTION:
//   - Infallible constructor for a trusted shape.
//
// Implementation:
//   - Stage 1: compute product(shape) (empty shape => 1).
//   - Stage 2: allocate and fill the buffer; copy the shape.
//
// Behavior highlights:
//   - fill is copied by assignment into every slot; for pointer, slice or map
//     element types all slots therefore share the same referent.
//
// Errors:
//   - Panics with an error wrapping ErrInvalidShape when a dimension is negative
//     or the product overflows int (programmer error).
//
// Complexity:
//   - Time O(N), Space O(N).
func New[T any](fill T, shape ...int) *Grid[T] {
	n, err := numElements(shape)
	if err != nil {
		panic(gridErrorf(ctxNew, shape, err, "cannot allocate"))
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = fill
	}

	return &Grid[T]{data: buf, shape: cloneShape(shape)}
}

// FromRaw adopts data as the row-major buffer of a grid with the given shape.
// MAIN DESCRIPTION:
//   - The only fallible constructor and the only place where buffer length is
//     checked against the shape.
//
// Implementation:
//   - Stage 1: validate the shape and compute its product.
//   - Stage 2: compare the product with len(data).
//   - Stage 3: take ownership of data (no copy) and copy the shape.
//
// Errors:
//   - ErrInvalidShape for negative or overflowing shapes.
//   - ErrShapeMismatch when len(data) != product(shape).
//
// Notes:
//   - The caller must not keep using data afterwards except through the grid.
//   - An empty shape accepts exactly one element; a zero dimension accepts none.
//
// Complexity:
//   - Time O(rank), Space O(rank).
func FromRaw[T any](data []T, shape ...int) (*Grid[T], error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, gridErrorf(ctxFromRaw, shape, err, "bad shape")
	}
	if n != len(data) {
		return nil, gridErrorf(ctxFromRaw, shape, ErrShapeMismatch,
			"data length %d, shape product %d", len(data), n)
	}

	return &Grid[T]{data: data, shape: cloneShape(shape)}, nil
}

// Take hands the buffer over to the caller and leaves the grid empty with
// shape [0], so the length invariant keeps holding.
func (g *Grid[T]) Take() []T {
	buf := g.data
	g.data = nil
	g.shape = []int{0}

	return buf
}

// Data returns the live row-major buffer. Writes through it are visible to the grid.
func (g *Grid[T]) Data() []T { return g.data }

// Shape returns a copy of the dimension sizes.
func (g *Grid[T]) Shape() []int { return cloneShape(g.shape) }

// Rank returns the number of dimensions.
func (g *Grid[T]) Rank() int { return len(g.shape) }

// Len returns the number of elements, i.e. product(Shape()).
func (g *Grid[T]) Len() int { return len(g.data) }

// Dim returns the size of dimension k. It panics if k is not in [0, Rank()).
func (g *Grid[T]) Dim(k int) int { return g.shape[k] }

// Strides returns row-major strides: the offset step of one unit along each
// dimension. The grid itself never caches these; offsets compute them on the fly.
func (g *Grid[T]) Strides() []int {
	strides := make([]int, len(g.shape))
	stride := 1
	for k := len(g.shape) - 1; k >= 0; k-- {
		strides[k] = stride
		stride *= g.shape[k]
	}

	return strides
}

// Clone returns a deep copy: new buffer and new shape.
// Element values are copied by assignment.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{data: cp, shape: cloneShape(g.shape)}
}

// String renders the grid as nested brackets, outermost dimension first,
// e.g. [[1, 2, 3], [4, 5, 6]] for shape [2 3]. A rank-0 grid renders its
// single value. Intended for diagnostics, not hot paths.
func (g *Grid[T]) String() string {
	var b strings.Builder
	if len(g.shape) == 0 {
		if len(g.data) == 1 {
			fmt.Fprint(&b, g.data[0])
		}

		return b.String()
	}
	g.writeDim(&b, 0, 0, len(g.data))

	return b.String()
}

// writeDim writes dimension k whose elements start at base and span size slots.
func (g *Grid[T]) writeDim(b *strings.Builder, k, base, size int) {
	b.WriteString(_fmtOpen)
	n := g.shape[k]
	if n > 0 {
		step := size / n
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(_fmtSep)
			}
			if k == len(g.shape)-1 {
				fmt.Fprint(b, g.data[base+i])
				continue
			}
			g.writeDim(b, k+1, base+i*step, step)
		}
	}
	b.WriteString(_fmtClose)
}
