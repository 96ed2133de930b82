// SPDX-License-Identifier: MIT

// Package gridmat: functional configuration for grid -> gonum conversions.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).

package gridmat

// ---------- Defaults (single source of truth) ----------

// DefaultShareBuffer makes ToDense/ToVecDense wrap the grid's buffer in place.
// Writes through the gonum value are then visible through the grid and vice versa.
const DefaultShareBuffer = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	shareBuffer bool // DefaultShareBuffer
}

// WithCopy makes conversions copy the grid's buffer, so the gonum value and
// the grid evolve independently.
func WithCopy() Option {
	return func(o *Options) { o.shareBuffer = false }
}

// WithSharedBuffer restores the default in-place wrapping.
func WithSharedBuffer() Option {
	return func(o *Options) { o.shareBuffer = true }
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{shareBuffer: DefaultShareBuffer}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
