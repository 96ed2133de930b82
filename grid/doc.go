// Package grid provides Grid, a row-major N-dimensional array view over a
// flat contiguous buffer.
//
// What & Why:
//
//	A Grid owns a buffer of N elements and a shape whose product is N. It maps
//	coordinate tuples to buffer offsets (last dimension fastest), checks ranks
//	and bounds, and exposes indexed reads and writes. The buffer itself stays
//	reachable through Data and Take so callers can bulk-process it without
//	per-element index translation.
//
// Construction:
//
//	g := grid.New(0, 3, 4, 5)              // 60 zeros, cannot fail on a valid shape
//	h, err := grid.FromRaw(buf, 2, 3)      // adopts buf; ErrShapeMismatch if len(buf) != 6
//
// An empty shape is a rank-0 grid holding one element; a zero dimension makes
// a legal grid with no elements.
//
// Access:
//
//	g.Set(7, 2, 3, 4)                      // panics on bad coordinates
//	v := g.At(2, 3, 4)
//	v, err := g.TryAt(idx...)              // returns ErrRankMismatch / ErrOutOfBound
//
// Offsets:
//
//	Offset accepts fewer indices than the rank (leading dimensions count as 0)
//	and negative indices in (-dim, dim). Its result is signed and not
//	normalized, so it is a diagnostic value rather than a buffer subscript.
//
// Complexity:
//
//	Access and offsets run in O(rank) and allocate nothing on success.
//
// Concurrency:
//
//	None. Callers must serialize writers against readers.
package grid
