package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New returns an n×n Grid with every site blocked.
//
// Returns ErrInvalidSize if n <= 0, or unionfind.ErrUnknownVariant for an
// unsupported WithVariant value.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := n * n
	full, err := unionfind.New(o.Variant, cells+1)
	if err != nil {
		return nil, err
	}
	perc, err := unionfind.New(o.Variant, cells+2)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:       n,
		open:    make([]bool, cells),
		full:    full,
		perc:    perc,
		top:     cells,
		bottom:  cells + 1,
		variant: o.Variant,
	}, nil
}

// Size returns n.
func (g *Grid) Size() int { return g.n }

// Variant reports the disjoint-set implementation backing g.
func (g *Grid) Variant() unionfind.Variant { return g.variant }

// index maps 1-indexed (row, col) to the row-major site index.
func (g *Grid) index(row, col int) (int, error) {
	if row < 1 || row > g.n || col < 1 || col > g.n {
		return 0, fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrOutOfRange, row, col, g.n)
	}
	return (row-1)*g.n + (col - 1), nil
}

// Open opens site (row, col) if it is not open already.
//
// The site is unioned with each open orthogonal neighbor in both disjoint
// sets. Row 1 is also unioned with the virtual top in both sets; row n is
// unioned with the virtual bottom in the percolation set only.
// Complexity: O(log n) amortized for WeightedQuickUnion.
func (g *Grid) Open(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	if g.open[idx] {
		return nil
	}
	g.open[idx] = true
	g.openCount++

	neighbors := [4][2]int{{row, col - 1}, {row, col + 1}, {row - 1, col}, {row + 1, col}}
	for _, nb := range neighbors {
		r, c := nb[0], nb[1]
		if r < 1 || r > g.n || c < 1 || c > g.n {
			continue
		}
		nIdx := (r-1)*g.n + (c - 1)
		if !g.open[nIdx] {
			continue
		}
		if err = g.unionBoth(idx, nIdx); err != nil {
			return err
		}
	}

	if row == 1 {
		if err = g.unionBoth(g.top, idx); err != nil {
			return err
		}
	}
	if row == g.n {
		// Percolation set only: keeps IsFull free of backwash.
		if err = g.perc.Union(g.bottom, idx); err != nil {
			return err
		}
	}

	return nil
}

// unionBoth applies the same union to both disjoint sets.
func (g *Grid) unionBoth(p, q int) error {
	if err := g.full.Union(p, q); err != nil {
		return err
	}
	return g.perc.Union(p, q)
}

// IsOpen reports whether site (row, col) has been opened.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}
	return g.open[idx], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites.
func (g *Grid) IsFull(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}
	if !g.open[idx] {
		return false, nil
	}
	return g.full.Connected(idx, g.top)
}

// NumberOfOpenSites returns the number of open sites.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int { return g.openCount }

// Percolates reports whether the virtual top and bottom are connected.
// Once true it stays true.
func (g *Grid) Percolates() bool {
	ok, err := g.perc.Connected(g.top, g.bottom)
	// top and bottom are always in range.
	return err == nil && ok
}

// OpenMask returns a row-major copy of the open flags.
func (g *Grid) OpenMask() []bool {
	out := make([]bool, len(g.open))
	copy(out, g.open)
	return out
}
