package figure

import (
	"math"
	"testing"

	"endpointplot/compare"
	"endpointplot/endpoint"
)

func TestJitterOffsets(t *testing.T) {
	// A lone point sits at the exact bar center
	if got := JitterOffsets(1, 0.12); len(got) != 1 || got[0] != 0 {
		t.Errorf("n=1: expected [0], got %v", got)
	}

	if got := JitterOffsets(0, 0.12); got != nil {
		t.Errorf("n=0: expected nil, got %v", got)
	}

	for _, n := range []int{2, 3, 5, 8} {
		hw := 0.12
		got := JitterOffsets(n, hw)
		if len(got) != n {
			t.Fatalf("n=%d: expected %d offsets, got %d", n, n, len(got))
		}

		if math.Abs(got[0]+hw) > 1e-12 || math.Abs(got[n-1]-hw) > 1e-12 {
			t.Errorf("n=%d: endpoints not at +/- %f: %v", n, hw, got)
		}

		step := 2 * hw / float64(n-1)
		for i := 1; i < n; i++ {
			if math.Abs(got[i]-got[i-1]-step) > 1e-12 {
				t.Errorf("n=%d: uneven spacing at %d: %v", n, i, got)
			}
		}
	}
}

func TestRender(t *testing.T) {
	groups, err := compare.Summarize([]endpoint.Sample{
		{File: "a", Group: "control", LastValue: 10},
		{File: "b", Group: "control", LastValue: 12},
		{File: "c", Group: "control", LastValue: 11},
		{File: "d", Group: "treated", LastValue: 20},
		{File: "e", Group: "treated", LastValue: 22},
		{File: "f", Group: "treated", LastValue: 19},
	})
	if err != nil {
		t.Fatal(err)
	}

	style := DefaultStyle()
	style.FigWidth = 2
	style.FigHeight = 2
	style.DPI = 50

	img, err := Render(groups, "time_28", "*", style)
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected a 100x100 raster, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderSingleGroupNoStar(t *testing.T) {
	groups, err := compare.Summarize([]endpoint.Sample{
		{File: "a", Group: "solo", LastValue: 4.2},
	})
	if err != nil {
		t.Fatal(err)
	}

	style := DefaultStyle()
	style.FigWidth = 1
	style.FigHeight = 1
	style.DPI = 50

	if _, err := Render(groups, "time_7", "", style); err != nil {
		t.Fatal(err)
	}
}

func TestRenderEmpty(t *testing.T) {
	if _, err := Render(nil, "time_0", "", DefaultStyle()); err == nil {
		t.Error("expected an error with no groups")
	}
}

func TestDefaultPalettesStayOffset(t *testing.T) {
	s := DefaultStyle()

	// The dot palette is the bar palette rotated by one position. This is a
	// deliberate contrast choice in the published figure.
	for i := range s.BarColors {
		if s.DotColors[i] != s.BarColors[(i+1)%len(s.BarColors)] {
			t.Fatalf("dot palette no longer offset from bar palette at %d: %v vs %v", i, s.DotColors, s.BarColors)
		}
	}
}

func TestNiceStep(t *testing.T) {
	for _, v := range []struct {
		raw      float64
		expected float64
	}{
		{1, 1},
		{2.5, 2},
		{4, 5},
		{8, 10},
		{0.3, 0.2},
		{70, 50},
	} {
		if got := niceStep(v.raw); math.Abs(got-v.expected) > 1e-12 {
			t.Errorf("niceStep(%v): expected %v, got %v", v.raw, v.expected, got)
		}
	}
}

func TestGroupMeans(t *testing.T) {
	series := []endpoint.SampleSeries{
		{File: "a", Group: "control", Values: map[int]float64{0: 1, 7: 3}},
		{File: "b", Group: "control", Values: map[int]float64{0: 3, 7: 5}},
		{File: "c", Group: "treated", Values: map[int]float64{0: 2, 7: 8}},
	}

	labels, timepoints, means := groupMeans(series)

	if len(labels) != 2 || labels[0] != "control" || labels[1] != "treated" {
		t.Fatalf("unexpected labels: %v", labels)
	}
	if len(timepoints) != 2 || timepoints[0] != 0 || timepoints[1] != 7 {
		t.Fatalf("unexpected timepoints: %v", timepoints)
	}

	for i, expected := range []float64{2, 4} {
		if got := means["control"][i]; math.Abs(got-expected) > 1e-12 {
			t.Errorf("control mean at timepoint %d: expected %f, got %f", timepoints[i], expected, got)
		}
	}
	for i, expected := range []float64{2, 8} {
		if got := means["treated"][i]; math.Abs(got-expected) > 1e-12 {
			t.Errorf("treated mean at timepoint %d: expected %f, got %f", timepoints[i], expected, got)
		}
	}
}
