// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMaskSize indicates the open mask does not hold exactly n² sites.
	ErrMaskSize = errors.New("gridgraph: open mask length must equal n*n")
)

// conn4 lists the orthogonal neighbor offsets: N, E, S, W.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridGraph is an immutable view of which sites of a grid are open.
// Width and Height define dimensions; open[y*Width+x] is the state of
// the site in column x, row y (both 0-indexed).
type GridGraph struct {
	Width, Height int
	open          []bool
}
