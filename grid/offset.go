// SPDX-License-Identifier: MIT

// Package grid - offset kernels.
//
// Two algorithms share one accumulation scheme: walk dimensions from the last
// (fastest-varying) to the first, adding idx*stride and growing stride by the
// dimension size. Strides are never precomputed.
//
//   - offsetOf: strict, exact rank, 0 <= idx < dim. Backs every accessor.
//   - Offset:   tolerant, trailing dims only, -dim < idx < dim, may go negative.

package grid

// offsetOf computes the buffer offset of a full coordinate tuple.
// MAIN DESCRIPTION:
//   - Bounds-checked row-major offset for the access path.
//
// Implementation:
//   - Stage 1: require len(idx) == Rank().
//   - Stage 2: walk k = rank-1 .. 0; check 0 <= idx[k] < shape[k];
//     off += idx[k]*stride; stride *= shape[k].
//
// Returns:
//   - (off, nil) with 0 <= off < Len() on success.
//
// Errors:
//   - ErrRankMismatch when the tuple length differs from the rank.
//   - ErrOutOfBound on the first (from the right) coordinate outside [0, dim).
//
// Complexity:
//   - Time O(rank), Space O(1); allocates only on error.
func (g *Grid[T]) offsetOf(method string, idx []int) (int, error) {
	if len(idx) != len(g.shape) {
		return 0, gridErrorf(method, idx, ErrRankMismatch,
			"got %d indices for rank %d", len(idx), len(g.shape))
	}

	var off int
	stride := 1
	for k := len(g.shape) - 1; k >= 0; k-- {
		dim, i := g.shape[k], idx[k]
		if i < 0 || i >= dim {
			return 0, gridErrorf(method, idx, ErrOutOfBound,
				"index %d out of bound [0, %d)", i, dim)
		}
		off += i * stride
		stride *= dim
	}

	return off, nil
}

// Offset computes a signed row-major offset that tolerates short and negative
// coordinates. It is a diagnostic utility, not a buffer subscript: the result
// is NOT normalized and can be negative.
//
// Behavior highlights:
//   - Fewer indices than Rank(): only the trailing dimensions are consulted;
//     leading dimensions count as 0. Offset() returns 0.
//   - Each consulted index must satisfy -dim < i < dim (both ends strict).
//   - More indices than Rank() is rejected.
//
// Errors:
//   - ErrRankMismatch when len(idx) > Rank().
//   - ErrOutOfBound when an index falls outside (-dim, dim).
//
// Example (shape [3 4 5]):
//
//	Offset(2, -1, -3) == 32
//	Offset(-1, -3)    == -8
//
// Complexity:
//   - Time O(len(idx)), Space O(1); allocates only on error.
func (g *Grid[T]) Offset(idx ...int) (int, error) {
	if len(idx) > len(g.shape) {
		return 0, gridErrorf(ctxOffset, idx, ErrRankMismatch,
			"got %d indices for rank %d", len(idx), len(g.shape))
	}

	var off int
	stride := 1
	lead := len(g.shape) - len(idx) // dimensions left implicit
	for k := len(idx) - 1; k >= 0; k-- {
		dim, i := g.shape[lead+k], idx[k]
		if i >= dim || i <= -dim {
			return 0, gridErrorf(ctxOffset, idx, ErrOutOfBound,
				"index %d should be in range (%d, %d)", i, -dim, dim)
		}
		off += i * stride
		stride *= dim
	}

	return off, nil
}

// Coordinates inverts the strict offset: it returns the coordinate tuple
// stored at buffer position off.
//
// Errors:
//   - ErrOutOfBound when off is outside [0, Len()).
//
// Complexity:
//   - Time O(rank), Space O(rank).
func (g *Grid[T]) Coordinates(off int) ([]int, error) {
	if off < 0 || off >= len(g.data) {
		return nil, gridErrorf(ctxCoordinates, []int{off}, ErrOutOfBound,
			"offset %d out of bound [0, %d)", off, len(g.data))
	}

	coords := make([]int, len(g.shape))
	for k := len(g.shape) - 1; k >= 0; k-- {
		dim := g.shape[k]
		coords[k] = off % dim
		off /= dim
	}

	return coords, nil
}
