package metrics

import (
	"math"

	"github.com/wonny/fundamentals/internal/financials"
)

// Sum adds all populated periods; 0 for an empty series
func Sum(s financials.Series) float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Average is Sum/len, defined as 0 for an empty series
func Average(s financials.Series) float64 {
	if len(s) == 0 {
		return 0
	}
	return Sum(s) / float64(len(s))
}

// AnnualizedAverage scales the per-period average to a year, assuming four
// quarters per year and that every entry spans period quarters. Returns 0 when
// period is unset.
func AnnualizedAverage(s financials.Series, period int) float64 {
	if period == 0 {
		return 0
	}
	return Average(s) * 4 / float64(period)
}

// MinCoverageQuarters is the overlapping history, in quarters, of the series
// that feed one metric: period × the shortest series length.
func MinCoverageQuarters(period int, series ...financials.Series) int {
	if len(series) == 0 {
		return 0
	}
	n := math.MaxInt
	for _, s := range series {
		n = min(n, len(s))
	}
	return period * n
}

// has reports whether every series has at least one period
func has(series ...financials.Series) bool {
	for _, s := range series {
		if !s.Has() {
			return false
		}
	}
	return true
}

// ratio divides num by den. A zero denominator or a non-finite result is not
// computable.
func ratio(num, den float64) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return finite(num / den)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
