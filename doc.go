// Package percolation is the root of a toolkit for estimating the site
// percolation threshold of an n×n grid by Monte Carlo simulation.
//
// Subpackages:
//
//	unionfind/   — QuickFind, QuickUnion and WeightedQuickUnion behind one Engine interface
//	percolation/ — the grid: Open, IsOpen, IsFull, Percolates, with no backwash
//	sampler/     — independent trials on a worker pool, one seeded stream per trial
//	stats/       — mean, sample standard deviation, 95% confidence interval
//	gridgraph/   — BFS view of a grid's open sites: clusters, full sites, sites left to open
//	cmd/percolation — the command-line front end
//
// Quick ASCII example (3×3, '~' full, '.' open, '#' blocked):
//
//	#~#
//	#~#
//	#~.
//
// percolates through the middle column; the bottom-right site is open but
// not full.
//
//	go install github.com/katalvlaran/percolation/cmd/percolation@latest
//	percolation stats 200 100
package percolation
