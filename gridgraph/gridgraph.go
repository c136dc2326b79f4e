package gridgraph

// FromMask builds an n×n GridGraph from a row-major open mask, as returned
// by percolation.Grid.OpenMask. The mask is copied.
// Returns ErrEmptyGrid if n <= 0, ErrMaskSize if len(open) != n*n.
// Complexity: O(n²) time and memory.
func FromMask(n int, open []bool) (*GridGraph, error) {
	if n <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(open) != n*n {
		return nil, ErrMaskSize
	}
	cells := make([]bool, len(open))
	copy(cells, open)

	return &GridGraph{Width: n, Height: n, open: cells}, nil
}

// From2D builds a GridGraph from a rectangular [][]bool, indexed [y][x].
// Returns ErrEmptyGrid for an empty input, ErrNonRectangular for a ragged one.
func From2D(rows [][]bool) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]bool, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &GridGraph{Width: w, Height: h, open: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether the site at (x,y) is open. Out-of-bounds sites
// are reported closed.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.open[gg.index(x, y)]
}

// OpenCount returns the number of open sites.
func (gg *GridGraph) OpenCount() int {
	count := 0
	for _, o := range gg.open {
		if o {
			count++
		}
	}
	return count
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
