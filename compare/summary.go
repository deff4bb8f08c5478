// Package compare aggregates endpoint samples by group and tests whether two
// groups differ, using a two-sided Mann-Whitney U rank-sum test.
package compare

import (
	gstat "github.com/gonum/stat"
	"github.com/montanaflynn/stats"

	"endpointplot/endpoint"
)

// GroupSummary holds per-group aggregates of the final-timepoint values.
type GroupSummary struct {
	Label  string
	N      int
	Mean   float64
	SD     float64
	Median float64
	Min    float64
	Max    float64

	// Values keeps the individual measurements, in input order, for the
	// scatter overlay and the rank-sum test.
	Values []float64
}

// Summarize partitions the samples by group label, in first-appearance order,
// and computes per-group aggregates. Mean and SD are order-independent:
// permuting rows within a group yields the same summary.
func Summarize(samples []endpoint.Sample) ([]GroupSummary, error) {
	order := make([]string, 0)
	byGroup := make(map[string][]float64)

	for _, s := range samples {
		if _, seen := byGroup[s.Group]; !seen {
			order = append(order, s.Group)
		}
		byGroup[s.Group] = append(byGroup[s.Group], s.LastValue)
	}

	out := make([]GroupSummary, 0, len(order))
	for _, label := range order {
		values := byGroup[label]

		g := GroupSummary{Label: label, N: len(values), Values: values}

		// stat.MeanStdDev returns the unbiased (sample) standard deviation,
		// which is NaN for a single observation; a lone sample gets a zero
		// error bar instead.
		g.Mean, g.SD = gstat.MeanStdDev(values, nil)
		if g.N < 2 {
			g.SD = 0
		}

		data := stats.LoadRawData(values)

		var err error
		if g.Median, err = data.Median(); err != nil {
			return nil, err
		}
		if g.Min, err = data.Min(); err != nil {
			return nil, err
		}
		if g.Max, err = data.Max(); err != nil {
			return nil, err
		}

		out = append(out, g)
	}

	return out, nil
}

// GlobalMax returns the largest individual measurement across all groups. The
// figure reserves headroom above it for the significance annotation.
func GlobalMax(groups []GroupSummary) float64 {
	max := 0.0
	for _, g := range groups {
		if g.Max > max {
			max = g.Max
		}
	}

	return max
}
