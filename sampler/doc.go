// Package sampler estimates the percolation threshold by Monte Carlo
// simulation.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random sites
// until the grid percolates, and records the fraction of open sites. The
// collected samples feed package stats.
//
// Trials are independent, so New runs them on a bounded worker pool
// (golang.org/x/sync/errgroup). Every trial draws from its own random stream
// derived from (Seed, trial index); a given seed therefore yields the same
// samples in the same order whatever the worker count.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 or trials <= 0.
//   - ErrTrialExhausted: a trial hit Options.MaxDraws before percolating.
//   - ctx.Err(): the context was cancelled before all trials finished.
package sampler
