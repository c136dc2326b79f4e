package gridgraph

// ConnectedComponents finds all clusters of open sites under orthogonal
// connectivity. Returns a slice of components; each component is a slice of
// site indices (row-major) in BFS order. Components appear in row-major
// order of their first site.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.open))
	var comps [][]int

	for i0, o := range gg.open {
		if !o || seen[i0] {
			continue
		}
		seen[i0] = true
		comps = append(comps, gg.flood([]int{i0}, seen))
	}
	return comps
}

// FullSites returns a row-major mask of the sites reachable from an open
// top-row site through open sites.
//
// Time:   O(W·H·4).
// Memory: O(W·H).
func (gg *GridGraph) FullSites() []bool {
	seen := make([]bool, len(gg.open))
	var sources []int
	for x := 0; x < gg.Width; x++ {
		i := gg.index(x, 0)
		if gg.open[i] {
			seen[i] = true
			sources = append(sources, i)
		}
	}
	gg.flood(sources, seen)
	return seen
}

// Percolates reports whether some bottom-row site is full.
func (gg *GridGraph) Percolates() bool {
	full := gg.FullSites()
	for x := 0; x < gg.Width; x++ {
		if full[gg.index(x, gg.Height-1)] {
			return true
		}
	}
	return false
}

// flood runs a BFS over open sites from queue, whose entries must already be
// marked in seen. It returns every visited index in visit order.
func (gg *GridGraph) flood(queue []int, seen []bool) []int {
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range conn4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if gg.open[vi] && !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
