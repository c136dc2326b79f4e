package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// printer renders command results in one output format.
type printer interface {
	Stats(results []statsResult) error
	Simulation(res simulateResult) error
}

func newPrinter(format string, w io.Writer) printer {
	switch format {
	case "table":
		return &tablePrinter{w: w}
	case "json":
		return &jsonPrinter{w: w}
	default:
		return &simplePrinter{w: w}
	}
}

// simplePrinter mirrors the classic report: the summary block followed by a
// timing line "n=N, T=T <seconds> <variant>".
type simplePrinter struct{ w io.Writer }

func (p *simplePrinter) Stats(results []statsResult) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintln(p.w, r.Summary.String())
		if _, err := fmt.Fprintf(p.w, "n=%d, T=%d %.6f %s\n", r.N, r.Trials, r.Elapsed.Seconds(), r.Variant); err != nil {
			return err
		}
	}
	return nil
}

func (p *simplePrinter) Simulation(r simulateResult) error {
	fmt.Fprintf(p.w, "threshold: %v\n", r.Threshold)
	fmt.Fprintf(p.w, "percolates: %v\n", r.Percolates)
	fmt.Fprintf(p.w, "open sites: %s of %s (%s draws)\n",
		humanize.Comma(int64(r.OpenSites)), humanize.Comma(int64(r.N*r.N)), humanize.Comma(int64(r.Draws)))
	fmt.Fprintf(p.w, "clusters: %d (largest %s)\n", r.Clusters, humanize.Comma(int64(r.LargestCluster)))
	_, err := fmt.Fprintf(p.w, "sites to open: %d\n", r.SitesToOpen)
	for _, line := range r.Grid {
		if _, err = fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return err
}

type tablePrinter struct{ w io.Writer }

func (p *tablePrinter) Stats(results []statsResult) error {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Variant", "N", "Trials", "Mean", "Stddev", "95% Low", "95% High", "Draws", "Elapsed"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		table.Append([]string{
			r.Variant,
			strconv.Itoa(r.N),
			strconv.Itoa(r.Trials),
			formatFloat(r.Summary.Mean),
			formatFloat(r.Summary.StdDev),
			formatFloat(r.Summary.ConfidenceLow),
			formatFloat(r.Summary.ConfidenceHigh),
			humanize.Comma(int64(r.Draws)),
			r.Elapsed.String(),
		})
	}
	table.Render()
	return nil
}

func (p *tablePrinter) Simulation(r simulateResult) error {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"variant", r.Variant},
		{"n", strconv.Itoa(r.N)},
		{"seed", strconv.FormatInt(r.Seed, 10)},
		{"draws", humanize.Comma(int64(r.Draws))},
		{"open sites", humanize.Comma(int64(r.OpenSites))},
		{"threshold", formatFloat(r.Threshold)},
		{"percolates", strconv.FormatBool(r.Percolates)},
		{"clusters", strconv.Itoa(r.Clusters)},
		{"largest cluster", humanize.Comma(int64(r.LargestCluster))},
		{"sites to open", strconv.Itoa(r.SitesToOpen)},
	})
	table.Render()
	for _, line := range r.Grid {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

type jsonPrinter struct{ w io.Writer }

func (p *jsonPrinter) Stats(results []statsResult) error { return p.encode(results) }

func (p *jsonPrinter) Simulation(r simulateResult) error { return p.encode(r) }

func (p *jsonPrinter) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
