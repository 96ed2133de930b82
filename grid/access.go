// SPDX-License-Identifier: MIT

// Package grid - element accessors.
//
// Two surfaces over the same strict offset kernel (offsetOf):
//   - At / Set / Ptr panic on a bad coordinate. A wrong rank or an out-of-range
//     index is a programming error at these call sites. The panic value is the
//     wrapped error, so recover() results still match with errors.Is.
//   - TryAt / TrySet return the error instead.
//
// Coordinates are variadic: g.At(2, 3, 4) for a fixed rank known at the call
// site, g.At(idx...) for a tuple built at runtime. Both take the same path.

package grid

// mustOffset resolves idx or panics with the wrapped error.
func (g *Grid[T]) mustOffset(method string, idx []int) int {
	off, err := g.offsetOf(method, idx)
	if err != nil {
		panic(err)
	}

	return off
}

// At returns the element at idx.
// It panics (ErrRankMismatch / ErrOutOfBound) on an invalid coordinate; use
// TryAt where the coordinate is untrusted.
// Complexity: O(rank).
func (g *Grid[T]) At(idx ...int) T {
	return g.data[g.mustOffset(ctxAt, idx)]
}

// Set stores v at idx.
// It panics (ErrRankMismatch / ErrOutOfBound) on an invalid coordinate; use
// TrySet where the coordinate is untrusted.
// Complexity: O(rank).
func (g *Grid[T]) Set(v T, idx ...int) {
	g.data[g.mustOffset(ctxSet, idx)] = v
}

// Ptr returns a pointer to the element at idx for in-place updates.
// After Take the pointer still addresses the handed-out buffer, so writes
// through it are no longer visible via the grid. Panics like At.
func (g *Grid[T]) Ptr(idx ...int) *T {
	return &g.data[g.mustOffset(ctxPtr, idx)]
}

// TryAt is the non-panicking form of At.
//
// Errors:
//   - ErrRankMismatch, ErrOutOfBound (wrapped with the coordinates).
func (g *Grid[T]) TryAt(idx ...int) (T, error) {
	off, err := g.offsetOf(ctxTryAt, idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[off], nil
}

// TrySet is the non-panicking form of Set. On error the grid is unchanged.
func (g *Grid[T]) TrySet(v T, idx ...int) error {
	off, err := g.offsetOf(ctxTrySet, idx)
	if err != nil {
		return err
	}
	g.data[off] = v

	return nil
}
