// Package figure renders the endpoint comparison as a bar-and-scatter PNG
// with an optional significance bracket.
package figure

// Style is the full set of drawing parameters for the comparison figure. It
// is passed explicitly into Render rather than living in process-wide mutable
// state, so renders stay reproducible and testable.
type Style struct {
	// BarColors and DotColors are hex colors applied by group-appearance
	// index, wrapping if there are more groups than colors.
	BarColors []string
	DotColors []string

	// JitterWidth is the half-width, in axis-x units, of the horizontal
	// spread applied to a group's scatter points.
	JitterWidth float64

	BarWidth       float64 // axis-x units
	DotRadius      float64 // pixels
	ErrorLineWidth float64 // pixels
	ErrorCapWidth  float64 // axis-x units

	FigWidth  float64 // inches
	FigHeight float64 // inches
	DPI       float64
}

// DefaultStyle carries the constants of the published figure.
//
// The dot palette is the bar palette shifted by one position, so a group's
// points contrast with its own bar fill. Do not align the two palettes.
func DefaultStyle() Style {
	return Style{
		BarColors:      []string{"#4C72B0", "#DD8452", "#55A868", "#C44E52"},
		DotColors:      []string{"#DD8452", "#55A868", "#C44E52", "#4C72B0"},
		JitterWidth:    0.12,
		BarWidth:       0.6,
		DotRadius:      4,
		ErrorLineWidth: 2,
		ErrorCapWidth:  0.14,
		FigWidth:       4,
		FigHeight:      5,
		DPI:            150,
	}
}
