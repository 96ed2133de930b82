// SPDX-License-Identifier: MIT

package grid

// Test-Bridge (White-Box) for the strict offset kernel.
//
// Purpose:
//   - Expose the unexported offsetOf to grid_test ONLY, without widening the
//     production API. The file ends in _test.go, so it never ships.

// OffsetOfValid_TestOnly forwards to offsetOf with the At method tag.
func OffsetOfValid_TestOnly[T any](g *Grid[T], idx ...int) (int, error) {
	return g.offsetOf(ctxAt, idx)
}
