package gridgraph

import (
	"container/list"
)

// MinOpenToPercolate finds the fewest blocked sites that must be opened so
// that an open path joins the top row to the bottom row.
// Returns the path as site indices (row-major, top to bottom) and the number
// of blocked sites on it. A grid that already percolates yields cost 0.
//
// Behavior:
//  1. Seed a 0–1 BFS with every top-row site:
//     • open site    → distance 0
//     • blocked site → distance 1
//  2. Moving into an open site costs 0; into a blocked site costs 1.
//  3. Stop when the first bottom-row site leaves the deque.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·4).
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) MinOpenToPercolate() (path []int, cost int) {
	N := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for x := 0; x < gg.Width; x++ {
		i := gg.index(x, 0)
		if gg.open[i] {
			dist[i] = 0
			dq.PushFront(i)
		} else {
			dist[i] = 1
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		ux, uy := gg.Coordinate(u)
		if uy == gg.Height-1 {
			target = u
			break
		}
		for _, d := range conn4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.open[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every non-empty grid has a top-to-bottom path once blocked sites may
	// be opened, so target is always set.
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}
	return path, dist[target]
}
