// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors. Detection sites wrap
// them with method context and the offending values; callers match with
// errors.Is. The panicking accessors (At/Set/Ptr) panic with the same wrapped
// values, so a recover() can be matched the same way.

package grid

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grid: ..." for grep-ability. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site; never compare strings.

var (
	// ErrShapeMismatch is returned when a buffer length does not equal the
	// product of the shape (data length not matching dimensions).
	ErrShapeMismatch = errors.New("grid: data length not matching dimensions")

	// ErrInvalidShape is returned when a shape holds a negative dimension or
	// its product overflows int.
	ErrInvalidShape = errors.New("grid: invalid shape")

	// ErrRankMismatch indicates the number of indices does not fit the rank
	// (bad length of indices).
	ErrRankMismatch = errors.New("grid: bad length of indices")

	// ErrOutOfBound indicates that an index (or a linear offset) lies outside
	// the valid range of its dimension.
	ErrOutOfBound = errors.New("grid: index out of bound")
)
