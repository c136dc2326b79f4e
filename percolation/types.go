package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: coordinate out of range")
)

// Options configures a Grid.
type Options struct {
	// Variant selects the disjoint-set implementation backing the grid.
	Variant unionfind.Variant
}

// Option configures Options.
type Option func(*Options)

// WithVariant returns an Option selecting the disjoint-set implementation.
func WithVariant(v unionfind.Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// DefaultOptions returns Options backed by WeightedQuickUnion.
func DefaultOptions() Options {
	return Options{Variant: unionfind.WeightedQuickUnion}
}

// Site is the observable state of one grid cell.
type Site int

const (
	// Blocked sites have not been opened.
	Blocked Site = iota
	// Open sites are open but not connected to the top row.
	Open
	// Full sites are open and connected to the top row.
	Full
)

// String returns the single-character glyph used by Render.
func (s Site) String() string {
	switch s {
	case Open:
		return "."
	case Full:
		return "~"
	default:
		return "#"
	}
}

// Grid is an n×n percolation system. It is not safe for concurrent use;
// each trial owns its own Grid.
type Grid struct {
	n         int
	open      []bool // row-major, len n²
	openCount int

	// full holds sites + virtual top (n²+1 elements).
	full *unionfind.DisjointSet
	// perc holds sites + virtual top + virtual bottom (n²+2 elements).
	perc *unionfind.DisjointSet

	top, bottom int
	variant     unionfind.Variant
}
