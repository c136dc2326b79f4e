package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/sampler"
	"github.com/katalvlaran/percolation/stats"
	"github.com/katalvlaran/percolation/unionfind"
)

type statsFlags struct {
	variants []string
	workers  int
	seed     int64
	maxDraws int
	timeout  time.Duration
}

// statsResult is one variant's run, as handed to a printer.
type statsResult struct {
	Variant string        `json:"variant"`
	N       int           `json:"n"`
	Trials  int           `json:"trials"`
	Seed    int64         `json:"seed"`
	Summary stats.Summary `json:"summary"`
	Draws   int           `json:"draws"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// newStatsCommand returns the cobra command for "stats".
func newStatsCommand(gf *globalFlags) *cobra.Command {
	sf := &statsFlags{}
	cmd := &cobra.Command{
		Use:   "stats N T",
		Short: "Run T trials on an N-by-N grid and report the threshold estimate per variant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return statsCommandFunc(cmd, gf, sf, args)
		},
	}
	cmd.Flags().StringSliceVar(&sf.variants, "variant", []string{"wqu", "qf"}, "union-find variants to run (wqu, qf, qu)")
	cmd.Flags().IntVar(&sf.workers, "workers", 0, "concurrent trials (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&sf.seed, "seed", 0, "base random seed (0 = time based)")
	cmd.Flags().IntVar(&sf.maxDraws, "max-draws", 0, "per-trial cap on random draws (0 = unbounded)")
	cmd.Flags().DurationVar(&sf.timeout, "timeout", 0, "abort the whole run after this long (0 = no timeout)")
	return cmd
}

func statsCommandFunc(cmd *cobra.Command, gf *globalFlags, sf *statsFlags, args []string) error {
	n, err := parsePositive("N", args[0])
	if err != nil {
		return err
	}
	trials, err := parsePositive("T", args[1])
	if err != nil {
		return err
	}
	if trials < 2 {
		return fmt.Errorf("T must be at least 2 to estimate a standard deviation, got %d", trials)
	}
	variants, err := parseVariants(sf.variants)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if sf.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sf.timeout)
		defer cancel()
	}

	seed := resolveSeed(sf.seed)
	gf.lg.Info("starting run", zap.Int("n", n), zap.Int("trials", trials), zap.Int64("seed", seed))

	results := make([]statsResult, 0, len(variants))
	for _, v := range variants {
		res, err := runStats(ctx, gf.lg, n, trials, seed, v, sf)
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		results = append(results, res)
	}

	return newPrinter(gf.WriteOut, cmd.OutOrStdout()).Stats(results)
}

func runStats(ctx context.Context, lg *zap.Logger, n, trials int, seed int64, v unionfind.Variant, sf *statsFlags) (statsResult, error) {
	s, err := sampler.New(ctx, n, trials,
		sampler.WithVariant(v),
		sampler.WithWorkers(sf.workers),
		sampler.WithSeed(seed),
		sampler.WithMaxDraws(sf.maxDraws),
		sampler.WithLogger(lg),
	)
	if err != nil {
		return statsResult{}, err
	}
	sum, err := s.Summary()
	if err != nil {
		return statsResult{}, err
	}

	total := 0
	for _, d := range s.Draws() {
		total += d
	}
	return statsResult{
		Variant: v.Short(),
		N:       n,
		Trials:  trials,
		Seed:    seed,
		Summary: sum,
		Draws:   total,
		Elapsed: s.Elapsed(),
	}, nil
}
