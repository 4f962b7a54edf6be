package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/wonny/fundamentals/internal/financials"
	"github.com/wonny/fundamentals/internal/metrics"
	"github.com/wonny/fundamentals/pkg/amount"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the stdout renderer
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag or config value into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Report is everything one invocation prints about a company
type Report struct {
	RunID     string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Company   string   `json:"company,omitempty" yaml:"company,omitempty"`
	MarketCap string   `json:"market_cap,omitempty" yaml:"market_cap,omitempty"`
	Period    int      `json:"reporting_period,omitempty" yaml:"reporting_period,omitempty"`
	Metrics   []Metric `json:"metrics" yaml:"metrics"`
}

// Metric is one computed line of the report
type Metric struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     string  `json:"kind" yaml:"kind"`
	Value    float64 `json:"value" yaml:"value"`
	Quarters int     `json:"quarters,omitempty" yaml:"quarters,omitempty"`
	Formula  string  `json:"formula" yaml:"formula"`
}

// New assembles a report from the inputs and the computed metrics.
// Uncomputed metrics are left out; order follows the metric table.
func New(f *financials.Financials, set metrics.Set) *Report {
	r := &Report{
		Company:   f.Name,
		MarketCap: f.MarketCapText,
		Period:    f.Period,
		Metrics:   make([]Metric, 0, len(set)),
	}
	for _, res := range set.Ordered() {
		r.Metrics = append(r.Metrics, Metric{
			Name:     string(res.Metric),
			Kind:     string(res.Kind),
			Value:    res.Value,
			Quarters: res.Quarters,
			Formula:  res.Formula,
		})
	}
	return r
}

// Display renders the value the way the text report shows it
func (m Metric) Display() string {
	if m.Kind == string(metrics.KindCurrency) {
		return "$" + amount.Format(m.Value)
	}
	return fmt.Sprintf("%.3f", m.Value)
}

// Coverage is "<N>Q", or empty for point-in-time metrics
func (m Metric) Coverage() string {
	if m.Quarters <= 0 {
		return ""
	}
	return fmt.Sprintf("%dQ", m.Quarters)
}

// Options tune rendering
type Options struct {
	Explain bool // text only: list the formula behind each value
}

// Render writes r to w in the given format
func Render(w io.Writer, r *Report, format Format, opts Options) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r, opts)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
