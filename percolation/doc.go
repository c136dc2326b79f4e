// Package percolation models an n×n grid of sites that start blocked and
// are opened one at a time, answering connectivity queries through
// union-find instead of re-scanning the grid.
//
// What:
//
//   - Grid.Open opens a site and unions it with its open orthogonal
//     neighbors.
//   - Grid.IsFull reports whether an open site is connected to the top row.
//   - Grid.Percolates reports whether the top row is connected to the
//     bottom row.
//
// How:
//
// Two disjoint sets back every grid. Both hold one element per site plus a
// virtual top node at index n². The second one also holds a virtual bottom
// node at n²+1, and every opened bottom-row site is unioned to it. Only the
// second set answers Percolates; IsFull asks the first one, which has no
// bottom node. Without that split, once the system percolates every site
// touching the bottom row would look full through the virtual bottom
// ("backwash").
//
// Coordinates are 1-indexed: row, col ∈ [1, n].
//
// Complexity (WeightedQuickUnion, the default):
//
//   - New:        O(n²) time and memory.
//   - Open:       O(log n) amortized.
//   - IsFull:     O(log n).
//   - Percolates: O(log n).
//
// Errors:
//
//   - ErrInvalidSize: n <= 0.
//   - ErrOutOfRange: row or col outside [1, n].
package percolation
