// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for shape validation and error labeling.
//  - Keep constructors and offset kernels minimal by delegating checks here.
//
// Determinism & Performance:
//  - All checks are pure and run in O(rank); only error paths allocate.

package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxFromRaw     = "FromRaw"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxPtr         = "Ptr"
	ctxTryAt       = "TryAt"
	ctxTrySet      = "TrySet"
	ctxOffset      = "Offset"
	ctxCoordinates = "Coordinates"
)

// gridErrorf wraps err with a uniform "Grid.<method>(<coords>): <detail>" context.
// Coordinates are rendered comma-separated to match the call site, e.g.
// Grid.At(2,3,5): index 5 out of bound [0, 5): grid: index out of bound.
func gridErrorf(method string, coords []int, err error, format string, args ...any) error {
	return fmt.Errorf("Grid.%s(%s): %s: %w", method, joinInts(coords), fmt.Sprintf(format, args...), err)
}

// joinInts renders ints as "a,b,c" without the brackets fmt adds for slices.
func joinInts(xs []int) string {
	var b strings.Builder
	for k, x := range xs {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}

	return b.String()
}

// numElements returns the product of shape, with the empty product defined as 1.
// Implementation:
//   - Stage 1: reject negative dimensions.
//   - Stage 2: multiply the non-zero dimensions with an overflow guard against
//     math.MaxInt. Zero dimensions are skipped here so that strides over the
//     remaining dimensions stay representable for Offset.
//   - Stage 3: any zero dimension makes the element count 0.
//
// Errors:
//   - ErrInvalidShape for a negative dimension or an overflowing product,
//     even when a zero dimension is present.
//
// Complexity:
//   - Time O(rank), Space O(1).
func numElements(shape []int) (int, error) {
	for k, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("dimension %d is %d: %w", k, d, ErrInvalidShape)
		}
	}

	n := 1
	hasZero := false
	for k, d := range shape {
		if d == 0 {
			hasZero = true
			continue
		}
		if n > math.MaxInt/d {
			return 0, fmt.Errorf("product overflows int at dimension %d (%v): %w", k, shape, ErrInvalidShape)
		}
		n *= d
	}
	if hasZero {
		return 0, nil
	}

	return n, nil
}

// cloneShape copies the caller's shape so the grid never aliases it.
// A nil or empty input yields an empty, non-nil slice (rank 0).
func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)

	return out
}
