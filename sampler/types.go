package sampler

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for sampler operations.
var (
	// ErrInvalidArgument indicates a non-positive grid size or trial count.
	ErrInvalidArgument = errors.New("sampler: grid size and trial count must be positive")
	// ErrTrialExhausted indicates a trial exceeded its draw budget.
	ErrTrialExhausted = errors.New("sampler: trial exceeded max draws before percolating")
)

// RandomSource yields uniform integers in [0, n). *rand.Rand satisfies it.
// A RandomSource is used by a single trial and need not be goroutine-safe.
type RandomSource interface {
	Intn(n int) int
}

// SourceFactory returns the RandomSource for the given trial index.
// It may be called concurrently from several workers.
type SourceFactory func(trial int) RandomSource

// Options configures a Sampler run.
//
// Fields:
//
//	Variant  — disjoint-set implementation for every grid.
//	Workers  — number of trials run concurrently; <= 0 means GOMAXPROCS.
//	Seed     — base seed for the per-trial streams; 0 means the fixed default.
//	MaxDraws — per-trial cap on random draws; 0 means unbounded.
//	Source   — overrides the seeded streams when non-nil.
//	Logger   — structured logger; nil means zap.NewNop().
type Options struct {
	Variant  unionfind.Variant
	Workers  int
	Seed     int64
	MaxDraws int
	Source   SourceFactory
	Logger   *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// WithVariant selects the disjoint-set implementation.
func WithVariant(v unionfind.Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithWorkers bounds the number of concurrent trials.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed sets the base seed for per-trial random streams.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxDraws caps the number of random draws per trial.
func WithMaxDraws(n int) Option {
	return func(o *Options) { o.MaxDraws = n }
}

// WithSourceFactory injects the random source used by each trial.
func WithSourceFactory(f SourceFactory) Option {
	return func(o *Options) { o.Source = f }
}

// WithLogger sets the structured logger.
func WithLogger(lg *zap.Logger) Option {
	return func(o *Options) { o.Logger = lg }
}

// DefaultOptions returns Options for WeightedQuickUnion with GOMAXPROCS
// workers, the default seed, no draw cap and no logging.
func DefaultOptions() Options {
	return Options{
		Variant: unionfind.WeightedQuickUnion,
		Logger:  zap.NewNop(),
	}
}
