package figure

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"endpointplot/compare"
)

// Render draws one bar per group (height = mean, symmetric SD error bar) with
// the individual measurements overlaid as jittered points. star, when
// non-empty, is drawn above a bracket spanning the two bars; it is only
// meaningful for a two-group comparison. The y-axis runs from 0 to 1.4 times
// the largest individual measurement, reserving headroom for the annotation.
func Render(groups []compare.GroupSummary, lastCol, star string, style Style) (image.Image, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("nothing to plot: no groups")
	}

	width := int(style.FigWidth * style.DPI)
	height := int(style.FigHeight * style.DPI)
	dc := gg.NewContext(width, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	gmax := compare.GlobalMax(groups)
	if gmax <= 0 {
		gmax = 1
	}
	ymax := 1.4 * gmax

	left := 0.15 * float64(width)
	right := 0.05 * float64(width)
	top := 0.06 * float64(height)
	bottom := 0.09 * float64(height)
	plotW := float64(width) - left - right
	plotH := float64(height) - top - bottom

	k := float64(len(groups))
	xpx := func(x float64) float64 { return left + (x+0.5)/k*plotW }
	ypx := func(v float64) float64 { return top + (1-v/ymax)*plotH }

	// Bars
	for i, g := range groups {
		x := float64(i)
		x0 := xpx(x - style.BarWidth/2)
		x1 := xpx(x + style.BarWidth/2)

		yTop := math.Min(ypx(g.Mean), ypx(0))
		yBot := math.Max(ypx(g.Mean), ypx(0))

		dc.SetHexColor(style.BarColors[i%len(style.BarColors)])
		dc.DrawRectangle(x0, yTop, x1-x0, yBot-yTop)
		dc.Fill()
	}

	// Error bars with caps
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(style.ErrorLineWidth)
	for i, g := range groups {
		if g.SD <= 0 {
			continue
		}

		x := float64(i)
		cx := xpx(x)
		dc.DrawLine(cx, ypx(g.Mean-g.SD), cx, ypx(g.Mean+g.SD))

		capL := xpx(x - style.ErrorCapWidth/2)
		capR := xpx(x + style.ErrorCapWidth/2)
		dc.DrawLine(capL, ypx(g.Mean+g.SD), capR, ypx(g.Mean+g.SD))
		dc.DrawLine(capL, ypx(g.Mean-g.SD), capR, ypx(g.Mean-g.SD))
		dc.Stroke()
	}

	// Scatter overlay
	for i, g := range groups {
		offsets := JitterOffsets(g.N, style.JitterWidth)
		for j, v := range g.Values {
			dc.DrawCircle(xpx(float64(i)+offsets[j]), ypx(v), style.DotRadius)
			dc.SetHexColor(style.DotColors[i%len(style.DotColors)])
			dc.FillPreserve()
			dc.SetRGB(1, 1, 1)
			dc.SetLineWidth(0.75)
			dc.Stroke()
		}
	}

	drawAxes(dc, groups, lastCol, ymax, left, top, plotW, plotH, xpx, ypx)

	if star != "" && len(groups) == 2 {
		drawBracket(dc, star, gmax, xpx, ypx)
	}

	return dc.Image(), nil
}

func drawAxes(dc *gg.Context, groups []compare.GroupSummary, lastCol string, ymax, left, top, plotW, plotH float64, xpx, ypx func(float64) float64) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(left, top, left, ypx(0))
	dc.DrawLine(left, ypx(0), left+plotW, ypx(0))
	dc.Stroke()

	step := niceStep(ymax / 4)
	for v := 0.0; v <= ymax*(1+1e-9); v += step {
		dc.DrawLine(left-4, ypx(v), left, ypx(v))
		dc.Stroke()
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'g', 4, 64), left-8, ypx(v), 1, 0.4)
	}

	for i, g := range groups {
		dc.DrawStringAnchored(g.Label, xpx(float64(i)), ypx(0)+8, 0.5, 1)
	}

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), left*0.35, top+plotH/2)
	dc.DrawStringAnchored(lastCol+" intensity", left*0.35, top+plotH/2, 0.5, 0.5)
	dc.Pop()
}

// drawBracket draws the significance bracket across the two bar positions at
// 1.1 times the global maximum, with end ticks of 0.05 times the global
// maximum reaching down toward the bars, and the star code centered above.
func drawBracket(dc *gg.Context, star string, gmax float64, xpx, ypx func(float64) float64) {
	y := 1.1 * gmax
	tick := 0.05 * gmax

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(xpx(0), ypx(y), xpx(1), ypx(y))
	dc.DrawLine(xpx(0), ypx(y), xpx(0), ypx(y-tick))
	dc.DrawLine(xpx(1), ypx(y), xpx(1), ypx(y-tick))
	dc.Stroke()

	dc.DrawStringAnchored(star, (xpx(0)+xpx(1))/2, ypx(y)-5, 0.5, 0)
}

// JitterOffsets returns the horizontal offsets, in axis-x units, for a group
// of n scatter points. A single point sits at the exact bar center; larger
// groups are spread evenly across [-halfWidth, +halfWidth], endpoints
// included.
func JitterOffsets(n int, halfWidth float64) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}

	out := make([]float64, n)
	step := 2 * halfWidth / float64(n-1)
	for i := range out {
		out[i] = -halfWidth + float64(i)*step
	}

	return out
}

// SavePNG writes the rendered figure to disk.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}

	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac < 1.5:
		return mag
	case frac < 3.5:
		return 2 * mag
	case frac < 7.5:
		return 5 * mag
	}

	return 10 * mag
}
