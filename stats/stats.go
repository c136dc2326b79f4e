// Package stats reduces percolation threshold samples to the figures the
// experiment reports: mean, sample standard deviation and a 95% confidence
// interval.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientSamples indicates fewer than two samples; the sample
// standard deviation is undefined.
var ErrInsufficientSamples = errors.New("stats: at least two samples are required")

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Summary describes a sample of percolation thresholds.
type Summary struct {
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	StdDev         float64 `json:"stddev"`
	ConfidenceLow  float64 `json:"confidence_low"`
	ConfidenceHigh float64 `json:"confidence_high"`
}

// Summarize computes a Summary of samples.
// The interval is mean ± 1.96·stddev/√T.
// Returns ErrInsufficientSamples if len(samples) < 2.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) < 2 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(samples))
	}
	mean, std := stat.MeanStdDev(samples, nil)
	half := HalfWidth(std, len(samples))

	return Summary{
		Count:          len(samples),
		Mean:           mean,
		StdDev:         std,
		ConfidenceLow:  mean - half,
		ConfidenceHigh: mean + half,
	}, nil
}

// Mean returns the arithmetic mean of samples, NaN if empty.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	return stat.Mean(samples, nil)
}

// StdDev returns the sample (n-1) standard deviation, NaN if fewer than two
// samples.
func StdDev(samples []float64) float64 {
	if len(samples) < 2 {
		return math.NaN()
	}
	return stat.StdDev(samples, nil)
}

// HalfWidth returns the half-width of the 95% confidence interval.
func HalfWidth(stddev float64, count int) float64 {
	return z95 * stddev / math.Sqrt(float64(count))
}

// String renders s as a three-line report.
func (s Summary) String() string {
	return fmt.Sprintf("mean                    = %v\nstddev                  = %v\n95%% confidence interval = [%v, %v]",
		s.Mean, s.StdDev, s.ConfidenceLow, s.ConfidenceHigh)
}
