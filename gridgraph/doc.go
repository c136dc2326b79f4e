// Package gridgraph treats the open sites of a square percolation grid as a
// graph and answers connectivity questions by breadth-first search.
//
// What:
//
//   - GridGraph wraps a row-major open mask (true = open site).
//   - ConnectedComponents lists the clusters of open sites.
//   - FullSites floods from the open top-row sites, the brute-force
//     definition of a "full" site.
//   - Percolates reports whether the flood reaches the bottom row.
//   - MinOpenToPercolate finds the fewest blocked sites that must still be
//     opened for the grid to percolate (0-1 BFS).
//
// Why:
//
//   - It re-scans the grid on every call, so it is far slower than the
//     union-find answers of package percolation. That independence makes it
//     a reference oracle, and it reports cluster structure that union-find
//     does not expose.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - FullSites:           O(W×H×4), Memory: O(W×H).
//   - MinOpenToPercolate:  O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMaskSize: mask length differs from n².
package gridgraph
