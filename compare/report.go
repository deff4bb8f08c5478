package compare

import (
	"fmt"
	"io"
)

// Run performs the two-group comparison when exactly two groups are present.
// Any other group count is not an error: the test is skipped and Run returns
// nil, nil.
func Run(groups []GroupSummary) (*TestResult, error) {
	if len(groups) != 2 {
		return nil, nil
	}

	res, err := MannWhitney(groups[0].Values, groups[1].Values)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// Report prints the per-group summary lines and the test outcome. A nil
// result means the test was skipped because the group count was not two.
func Report(w io.Writer, groups []GroupSummary, res *TestResult) {
	for _, g := range groups {
		fmt.Fprintf(w, "group %s: n=%d mean=%.3f sd=%.3f median=%.3f range=[%.3f, %.3f]\n",
			g.Label, g.N, g.Mean, g.SD, g.Median, g.Min, g.Max)
	}

	if res == nil {
		fmt.Fprintf(w, "Mann-Whitney U test not performed: exactly two groups are required, found %d.\n", len(groups))
		return
	}

	fmt.Fprintf(w, "Mann-Whitney U test: U=%.3f, p=%.5f (%s)\n", res.U, res.P, StarCode(res.P))

	if res.P < 0.05 {
		fmt.Fprintln(w, "Significant difference.")
	} else {
		fmt.Fprintln(w, "No significant difference.")
	}
}
