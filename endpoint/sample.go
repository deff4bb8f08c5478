// Package endpoint loads grouped time-series measurements from a CSV and
// reduces each sample to its value at the final recorded timepoint.
package endpoint

// Sample is one input row reduced to its final-timepoint measurement. The
// earlier timepoints remain in the source file but take no part in the
// comparison.
type Sample struct {
	File      string
	Group     string
	LastValue float64
}

// SampleSeries retains every timepoint for one input row. It is only needed
// for the supplementary time-course chart; the endpoint comparison uses
// Sample.
type SampleSeries struct {
	File   string
	Group  string
	Values map[int]float64 // keyed by the time_<n> suffix
}
