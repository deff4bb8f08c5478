package compare

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// TestResult is the outcome of a two-sided Mann-Whitney U test.
type TestResult struct {
	U float64
	P float64
}

// MannWhitney runs a two-sided Mann-Whitney U rank-sum test on two independent
// samples. No paired assumption, no normality assumption. The reported U is
// the statistic of the first sample.
//
// The p-value comes from the tie-corrected normal approximation without a
// continuity correction, matching the published figure; the exact small-sample
// distribution is deliberately not used.
func MannWhitney(x, y []float64) (TestResult, error) {
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return TestResult{}, fmt.Errorf("each group needs at least one observation (got %d and %d)", n1, n2)
	}

	type obs struct {
		value float64
		first bool
	}

	pooled := make([]obs, 0, n1+n2)
	for _, v := range x {
		pooled = append(pooled, obs{value: v, first: true})
	}
	for _, v := range y {
		pooled = append(pooled, obs{value: v})
	}
	sort.Slice(pooled, func(i, j int) bool { return pooled[i].value < pooled[j].value })

	// Midranks over the pooled sample; tied runs share the average of the
	// ranks they span, and each run of length t contributes t^3-t to the tie
	// correction.
	r1 := 0.0
	tieTerm := 0.0
	for i := 0; i < len(pooled); {
		j := i + 1
		for j < len(pooled) && pooled[j].value == pooled[i].value {
			j++
		}

		rank := float64(i+j+1) / 2 // ranks are 1-based
		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}

		for k := i; k < j; k++ {
			if pooled[k].first {
				r1 += rank
			}
		}

		i = j
	}

	fn1, fn2 := float64(n1), float64(n2)
	n := fn1 + fn2

	u := r1 - fn1*(fn1+1)/2
	mu := fn1 * fn2 / 2
	sigma2 := fn1 * fn2 / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if sigma2 <= 0 {
		return TestResult{}, fmt.Errorf("all %v pooled observations are identical; ranks carry no information", int(n))
	}

	z := (u - mu) / math.Sqrt(sigma2)
	p := 2 * distuv.UnitNormal.Survival(math.Abs(z))
	if p > 1 {
		p = 1
	}

	return TestResult{U: u, P: p}, nil
}

// StarCode maps a p-value to the conventional significance stars.
func StarCode(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	}

	return "ns"
}
