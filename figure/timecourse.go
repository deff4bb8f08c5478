package figure

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	gstat "github.com/gonum/stat"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"endpointplot/endpoint"
)

// RenderTimecourse writes a line chart of per-group mean intensity across all
// timepoints. This is a companion to the endpoint figure; the comparison
// itself only ever uses the final timepoint.
func RenderTimecourse(series []endpoint.SampleSeries, style Style, path string) error {
	labels, timepoints, means := groupMeans(series)
	if len(labels) == 0 {
		return fmt.Errorf("nothing to plot: no samples")
	}

	xs := make([]float64, len(timepoints))
	for i, tp := range timepoints {
		xs[i] = float64(tp)
	}

	chartSeries := make([]chart.Series, 0, len(labels))
	for i, label := range labels {
		hex := strings.TrimPrefix(style.BarColors[i%len(style.BarColors)], "#")

		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    label,
			XValues: xs,
			YValues: means[label],
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(hex),
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Width:  int(style.FigWidth * style.DPI),
		Height: int(style.FigHeight * style.DPI),
		XAxis: chart.XAxis{
			Name: "timepoint",
		},
		YAxis: chart.YAxis{
			Name: "mean intensity",
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}

// groupMeans averages each group's values at every observed timepoint. Labels
// come back in first-appearance order and timepoints in ascending order. The
// loader guarantees a rectangular table, so every group has values at every
// timepoint.
func groupMeans(series []endpoint.SampleSeries) (labels []string, timepoints []int, means map[string][]float64) {
	byGroup := make(map[string]map[int][]float64)
	tpSet := make(map[int]struct{})

	for _, s := range series {
		if _, seen := byGroup[s.Group]; !seen {
			labels = append(labels, s.Group)
			byGroup[s.Group] = make(map[int][]float64)
		}
		for tp, v := range s.Values {
			byGroup[s.Group][tp] = append(byGroup[s.Group][tp], v)
			tpSet[tp] = struct{}{}
		}
	}

	timepoints = make([]int, 0, len(tpSet))
	for tp := range tpSet {
		timepoints = append(timepoints, tp)
	}
	sort.Ints(timepoints)

	means = make(map[string][]float64, len(labels))
	for _, label := range labels {
		row := make([]float64, 0, len(timepoints))
		for _, tp := range timepoints {
			row = append(row, gstat.Mean(byGroup[label][tp], nil))
		}
		means[label] = row
	}

	return labels, timepoints, means
}
