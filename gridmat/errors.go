// SPDX-License-Identifier: MIT
// Package gridmat: sentinel error set.
// Detection sites wrap these with the offending shape; callers use errors.Is.

package gridmat

import "errors"

var (
	// ErrRank is returned when a grid's rank does not fit the requested gonum type
	// (2 for mat.Dense, 1 for mat.VecDense).
	ErrRank = errors.New("gridmat: unsupported rank")

	// ErrEmpty is returned when a grid has a zero-length dimension; gonum
	// matrices and vectors cannot be zero-sized.
	ErrEmpty = errors.New("gridmat: zero-length dimension")
)
