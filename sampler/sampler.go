package sampler

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/stats"
	"github.com/katalvlaran/percolation/unionfind"
)

// ctxCheckEvery is how many draws a trial makes between context checks.
const ctxCheckEvery = 1024

// Sampler holds the outcome of trials independent percolation experiments
// on an n×n grid. It is immutable once New returns.
type Sampler struct {
	n       int
	trials  int
	variant unionfind.Variant
	samples []float64
	draws   []int
	elapsed time.Duration
}

// New runs trials experiments on n×n grids and returns the collected
// samples.
//
// Steps:
//  1. Validate n > 0 and trials > 0, else ErrInvalidArgument.
//  2. Schedule one task per trial on an errgroup limited to Options.Workers.
//  3. Each task writes its sample into its own slot; no locking is needed.
//  4. The first failing trial cancels the rest and its error is returned.
//
// Complexity: O(trials · n² log n) for WeightedQuickUnion.
func New(ctx context.Context, n, trials int, opts ...Option) (*Sampler, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n=%d trials=%d", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Source == nil {
		o.Source = seededFactory(o.Seed)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	lg := o.Logger.With(
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.Stringer("variant", o.Variant),
	)

	s := &Sampler{
		n:       n,
		trials:  trials,
		variant: o.Variant,
		samples: make([]float64, trials),
		draws:   make([]int, trials),
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			sample, draws, err := runTrial(gctx, n, o.Variant, o.Source(i), o.MaxDraws)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			s.samples[i] = sample
			s.draws[i] = draws
			lg.Debug("trial finished",
				zap.Int("trial", i),
				zap.Float64("threshold", sample),
				zap.Int("draws", draws),
			)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		lg.Warn("sampling aborted", zap.Error(err))
		return nil, err
	}
	s.elapsed = time.Since(start)

	lg.Info("sampling finished",
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", s.elapsed),
	)
	return s, nil
}

// Trial opens random sites of a fresh n×n grid backed by v until it
// percolates, drawing row and col independently and uniformly from [1, n].
// It returns the grid and the number of draws used. maxDraws > 0 bounds the
// draws; exceeding it yields ErrTrialExhausted.
//
// Re-drawing an open site wastes a draw but is otherwise harmless, since
// Open is idempotent.
func Trial(ctx context.Context, n int, v unionfind.Variant, src RandomSource, maxDraws int) (*percolation.Grid, int, error) {
	g, err := percolation.New(n, percolation.WithVariant(v))
	if err != nil {
		return nil, 0, err
	}

	draws := 0
	for !g.Percolates() {
		if maxDraws > 0 && draws >= maxDraws {
			return g, draws, fmt.Errorf("%w: %d draws, %d open sites", ErrTrialExhausted, draws, g.NumberOfOpenSites())
		}
		if draws%ctxCheckEvery == 0 && ctx.Err() != nil {
			return g, draws, ctx.Err()
		}
		row, col := src.Intn(n)+1, src.Intn(n)+1
		draws++
		if err = g.Open(row, col); err != nil {
			return g, draws, err
		}
	}

	return g, draws, nil
}

// runTrial runs Trial and returns the open-site fraction.
func runTrial(ctx context.Context, n int, v unionfind.Variant, src RandomSource, maxDraws int) (float64, int, error) {
	g, draws, err := Trial(ctx, n, v, src, maxDraws)
	if err != nil {
		return 0, draws, err
	}
	return float64(g.NumberOfOpenSites()) / float64(n*n), draws, nil
}

// N returns the grid size.
func (s *Sampler) N() int { return s.n }

// Trials returns the number of completed trials.
func (s *Sampler) Trials() int { return s.trials }

// Variant returns the disjoint-set implementation used.
func (s *Sampler) Variant() unionfind.Variant { return s.variant }

// Samples returns a copy of the per-trial thresholds, in trial order.
// Every value lies in (0, 1].
func (s *Sampler) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}

// Draws returns a copy of the per-trial random draw counts.
func (s *Sampler) Draws() []int {
	out := make([]int, len(s.draws))
	copy(out, s.draws)
	return out
}

// Elapsed returns the wall-clock duration of the run.
func (s *Sampler) Elapsed() time.Duration { return s.elapsed }

// Summary reduces the samples to mean, standard deviation and a 95%
// confidence interval.
func (s *Sampler) Summary() (stats.Summary, error) {
	return stats.Summarize(s.samples)
}
