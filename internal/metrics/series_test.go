package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/fundamentals/internal/financials"
)

func TestSeriesHelpers(t *testing.T) {
	tests := []struct {
		name    string
		series  financials.Series
		period  int
		sum     float64
		average float64
		annual  float64
	}{
		{"empty", nil, 4, 0, 0, 0},
		{"single annual", financials.Series{10}, 4, 10, 10, 10},
		{"quarters", financials.Series{1, 2, 3, 4}, 1, 10, 2.5, 10},
		{"half years", financials.Series{6, 4}, 2, 10, 5, 10},
		{"period unset", financials.Series{10}, 0, 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum(tt.series))
			assert.Equal(t, tt.average, Average(tt.series))
			assert.Equal(t, tt.annual, AnnualizedAverage(tt.series, tt.period))
		})
	}
}

func TestMinCoverageQuarters(t *testing.T) {
	assert.Equal(t, 0, MinCoverageQuarters(4))
	assert.Equal(t, 8, MinCoverageQuarters(4, financials.Series{1, 2}, financials.Series{1, 2, 3}))
	assert.Equal(t, 0, MinCoverageQuarters(1, financials.Series{1}, nil))
}

func TestRatio(t *testing.T) {
	v, ok := ratio(10, 4)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = ratio(1, 0)
	assert.False(t, ok, "zero denominator")

	_, ok = ratio(math.Inf(1), 2)
	assert.False(t, ok, "infinite result")

	_, ok = ratio(math.NaN(), 2)
	assert.False(t, ok, "NaN result")
}
