package percolation

import (
	"bufio"
	"io"
	"strings"
)

// Sites returns the state of every site, indexed [row-1][col-1].
// Complexity: O(n² log n).
func (g *Grid) Sites() [][]Site {
	out := make([][]Site, g.n)
	for r := 1; r <= g.n; r++ {
		row := make([]Site, g.n)
		for c := 1; c <= g.n; c++ {
			// Coordinates are in range by construction.
			if full, _ := g.IsFull(r, c); full {
				row[c-1] = Full
			} else if open, _ := g.IsOpen(r, c); open {
				row[c-1] = Open
			}
		}
		out[r-1] = row
	}
	return out
}

// Render writes one line per row, one glyph per site:
// '#' blocked, '.' open, '~' full.
func Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Sites() {
		for _, s := range row {
			if _, err := bw.WriteString(s.String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders g as Render does.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = Render(&sb, g)
	return sb.String()
}
