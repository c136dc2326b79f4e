package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/sampler"
	"github.com/katalvlaran/percolation/unionfind"
)

type simulateFlags struct {
	variant  string
	seed     int64
	draws    int
	maxDraws int
	render   bool
}

// simulateResult describes a single grid after a simulation.
type simulateResult struct {
	Variant        string   `json:"variant"`
	N              int      `json:"n"`
	Seed           int64    `json:"seed"`
	Draws          int      `json:"draws"`
	OpenSites      int      `json:"open_sites"`
	Threshold      float64  `json:"threshold"`
	Percolates     bool     `json:"percolates"`
	Clusters       int      `json:"clusters"`
	LargestCluster int      `json:"largest_cluster"`
	SitesToOpen    int      `json:"sites_to_open"`
	Grid           []string `json:"grid,omitempty"`
}

// newSimulateCommand returns the cobra command for "simulate".
func newSimulateCommand(gf *globalFlags) *cobra.Command {
	sf := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate N",
		Short: "Open random sites of one N-by-N grid and show its state",
		Long: `Open random sites of one N-by-N grid until it percolates (or for exactly
--draws draws) and report open sites, clusters, and the grid itself:
'#' blocked, '.' open, '~' full.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateCommandFunc(cmd, gf, sf, args)
		},
	}
	cmd.Flags().StringVar(&sf.variant, "variant", "wqu", "union-find variant (wqu, qf, qu)")
	cmd.Flags().Int64Var(&sf.seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().IntVar(&sf.draws, "draws", 0, "stop after exactly this many draws instead of at percolation (0 = run to percolation)")
	cmd.Flags().IntVar(&sf.maxDraws, "max-draws", 0, "cap on random draws when running to percolation (0 = unbounded)")
	cmd.Flags().BoolVar(&sf.render, "render", true, "include the grid in the output")
	return cmd
}

func simulateCommandFunc(cmd *cobra.Command, gf *globalFlags, sf *simulateFlags, args []string) error {
	n, err := parsePositive("N", args[0])
	if err != nil {
		return err
	}
	v, err := unionfind.ParseVariant(sf.variant)
	if err != nil {
		return err
	}
	if sf.draws < 0 {
		return fmt.Errorf("--draws must not be negative, got %d", sf.draws)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	seed := resolveSeed(sf.seed)
	src := sampler.NewSource(seed, 0)

	var (
		g     *percolation.Grid
		draws int
	)
	if sf.draws > 0 {
		g, err = percolation.New(n, percolation.WithVariant(v))
		if err != nil {
			return err
		}
		for draws = 0; draws < sf.draws; draws++ {
			if err = g.Open(src.Intn(n)+1, src.Intn(n)+1); err != nil {
				return err
			}
		}
	} else {
		g, draws, err = sampler.Trial(ctx, n, v, src, sf.maxDraws)
		if err != nil {
			return err
		}
	}

	res, err := describe(g, v, seed, draws, sf.render)
	if err != nil {
		return err
	}
	gf.lg.Info("simulation finished",
		zap.Int("n", n),
		zap.Int("draws", draws),
		zap.Bool("percolates", res.Percolates),
	)
	return newPrinter(gf.WriteOut, cmd.OutOrStdout()).Simulation(res)
}

// describe collects the union-find answers and the BFS cluster report for g.
func describe(g *percolation.Grid, v unionfind.Variant, seed int64, draws int, render bool) (simulateResult, error) {
	n := g.Size()
	gg, err := gridgraph.FromMask(n, g.OpenMask())
	if err != nil {
		return simulateResult{}, err
	}
	comps := gg.ConnectedComponents()
	largest := 0
	for _, c := range comps {
		if len(c) > largest {
			largest = len(c)
		}
	}
	_, toOpen := gg.MinOpenToPercolate()

	res := simulateResult{
		Variant:        v.Short(),
		N:              n,
		Seed:           seed,
		Draws:          draws,
		OpenSites:      g.NumberOfOpenSites(),
		Threshold:      float64(g.NumberOfOpenSites()) / float64(n*n),
		Percolates:     g.Percolates(),
		Clusters:       len(comps),
		LargestCluster: largest,
		SitesToOpen:    toOpen,
	}
	if render {
		for _, row := range g.Sites() {
			line := make([]byte, len(row))
			for i, s := range row {
				line[i] = s.String()[0]
			}
			res.Grid = append(res.Grid, string(line))
		}
	}
	return res, nil
}
