package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wonny/fundamentals/internal/financials"
	"github.com/wonny/fundamentals/internal/metrics"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	f := &financials.Financials{
		Name:               "Acme",
		MarketCap:          null.FloatFrom(100e6),
		MarketCapText:      "100m",
		Period:             4,
		Earnings:           financials.Series{10e6},
		CurrentAssets:      financials.Series{100},
		CurrentLiabilities: financials.Series{50},
	}
	e, err := metrics.NewEngine(nil)
	require.NoError(t, err)
	return New(f, e.Compute(f))
}

func TestNew(t *testing.T) {
	r := sampleReport(t)

	assert.Equal(t, "Acme", r.Company)
	assert.Equal(t, "100m", r.MarketCap)
	assert.Equal(t, 4, r.Period)

	var names []string
	for _, m := range r.Metrics {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Earnings", "P/E", "Current ratio"}, names)
}

func TestMetricDisplay(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		display  string
		coverage string
	}{
		{"currency", Metric{Kind: "currency", Value: 10e6, Quarters: 4}, "$10.000m", "4Q"},
		{"small currency", Metric{Kind: "currency", Value: 100}, "$100.000", ""},
		{"ratio", Metric{Kind: "ratio", Value: 1.6}, "1.600", ""},
		{"negative ratio", Metric{Kind: "ratio", Value: -0.25, Quarters: 8}, "-0.250", "8Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.metric.Display())
			assert.Equal(t, tt.coverage, tt.metric.Coverage())
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(t), Options{}))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "", lines[0], "leading blank line")
	assert.Equal(t, "Company                  Acme", lines[1])
	assert.Equal(t, "Market cap               $100m", lines[2])
	assert.Equal(t, "Earnings                 $10.000m            4Q", lines[3])
	assert.Equal(t, "P/E                      10.000              4Q", lines[4])
	assert.Equal(t, "Current ratio            2.000", lines[5])
	assert.True(t, strings.HasSuffix(buf.String(), "\n\n"), "trailing blank line")
	assert.NotContains(t, buf.String(), "mktcap")
}

func TestWriteTextExplain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(t), Options{Explain: true}))

	assert.Contains(t, buf.String(), "4Q    [mktcap]")
	assert.Contains(t, buf.String(), "2.000               [balance-sheet]")
}

func TestWriteTextWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &Report{}, Options{}))
	assert.Equal(t, "\n\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	r := sampleReport(t)
	r.RunID = "run-1"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON, Options{}))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, "Acme", got["company"])

	ms, ok := got["metrics"].([]interface{})
	require.True(t, ok)
	require.Len(t, ms, 3)
	first := ms[0].(map[string]interface{})
	assert.Equal(t, "Earnings", first["name"])
	assert.Equal(t, "currency", first["kind"])
	assert.Equal(t, 10e6, first["value"])
	assert.Equal(t, float64(4), first["quarters"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), FormatYAML, Options{}))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Acme", got.Company)
	require.Len(t, got.Metrics, 3)
	assert.Equal(t, "P/E", got.Metrics[1].Name)
	assert.Equal(t, 10.0, got.Metrics[1].Value)
	assert.Equal(t, "mktcap", got.Metrics[1].Formula)
}

func TestWritePDF(t *testing.T) {
	for _, explain := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, WritePDF(&buf, sampleReport(t), Options{Explain: explain}))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = Render(&bytes.Buffer{}, &Report{}, "xml", Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
