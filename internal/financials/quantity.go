package financials

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/wonny/fundamentals/pkg/amount"
)

// ErrUnknownKey is returned for an input key that names no quantity
var ErrUnknownKey = errors.New("unknown input")

// ErrInvalidPeriod is returned when the reporting period is not an integer
var ErrInvalidPeriod = errors.New("invalid reporting period")

// Kind is the arity of an input quantity
type Kind int

const (
	KindText   Kind = iota // display-only string
	KindScalar             // single point-in-time amount
	KindPeriod             // reporting period length in quarters
	KindSeries             // repeatable, one entry per period
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindScalar:
		return "amount"
	case KindPeriod:
		return "quarters"
	case KindSeries:
		return "amounts"
	default:
		return "unknown"
	}
}

// Quantity describes one recognized input: its option key, short flag, help
// text, arity and where it lives in Financials.
type Quantity struct {
	Key   string
	Short string
	Usage string
	Kind  Kind

	text    func(*Financials) *string
	scalar  func(*Financials) *null.Float
	display func(*Financials) *string
	series  func(*Financials) *Series
}

// Quantities is the table of every recognized input, in help order
var Quantities = []Quantity{
	{Key: "name", Short: "n", Usage: "Company name", Kind: KindText,
		text: func(f *Financials) *string { return &f.Name }},
	{Key: "price", Short: "p", Usage: "Share price", Kind: KindScalar,
		scalar: func(f *Financials) *null.Float { return &f.Price }},
	{Key: "mktcap", Short: "P", Usage: "Market cap", Kind: KindScalar,
		scalar:  func(f *Financials) *null.Float { return &f.MarketCap },
		display: func(f *Financials) *string { return &f.MarketCapText }},
	{Key: "ev", Usage: "Enterprise value (overrides the computed EV)", Kind: KindScalar,
		scalar: func(f *Financials) *null.Float { return &f.EnterpriseValue }},
	{Key: "reporting-period", Short: "q", Usage: "Reporting period length in quarters (1-4)", Kind: KindPeriod},
	{Key: "div", Short: "D", Usage: "One period of dividends", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Dividends }},
	{Key: "div-ps", Short: "d", Usage: "One period of dividends per share", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.DividendsPerShare }},
	{Key: "earn", Short: "e", Usage: "One period of earnings", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Earnings }},
	{Key: "earn-ps", Short: "E", Usage: "One period of per-share earnings", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.EarningsPerShare }},
	{Key: "cfo", Usage: "One period of cash flow from operations", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.OperatingCashFlow }},
	{Key: "ebit", Short: "o", Usage: "One period of EBIT (operating profit)", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.EBIT }},
	{Key: "ebitda", Usage: "One period of EBITDA", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.EBITDA }},
	{Key: "da", Short: "r", Usage: "One period of depreciation and amortization", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.DepreciationAmortization }},
	{Key: "capex", Usage: "One period of capital expenditure", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Capex }},
	{Key: "tax", Usage: "One period of cash taxes", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.CashTaxes }},
	{Key: "assets", Short: "A", Usage: "Assets", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Assets }},
	{Key: "current-assets", Short: "a", Usage: "Current assets", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.CurrentAssets }},
	{Key: "intangibles", Short: "i", Usage: "Intangibles", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Intangibles }},
	{Key: "goodwill", Short: "g", Usage: "Goodwill", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Goodwill }},
	{Key: "liabilities", Short: "L", Usage: "Liabilities", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Liabilities }},
	{Key: "current-liabilities", Short: "l", Usage: "Current liabilities", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.CurrentLiabilities }},
	{Key: "std", Short: "t", Usage: "Short-term debt", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.ShortTermDebt }},
	{Key: "ltd", Short: "T", Usage: "Long-term debt", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.LongTermDebt }},
	{Key: "inventories", Short: "I", Usage: "Inventories", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Inventories }},
	{Key: "cash", Short: "c", Usage: "Cash", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.Cash }},
	{Key: "minority-interest", Short: "m", Usage: "Minority interest", Kind: KindSeries,
		series: func(f *Financials) *Series { return &f.MinorityInterest }},
}

// Lookup finds the quantity registered under key
func Lookup(key string) (Quantity, bool) {
	for _, q := range Quantities {
		if q.Key == key {
			return q, true
		}
	}
	return Quantity{}, false
}

// Set parses raw and stores it into f. Series quantities append one period.
func (q Quantity) Set(f *Financials, raw string) error {
	switch q.Kind {
	case KindText:
		*q.text(f) = raw
		return nil
	case KindPeriod:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidPeriod, raw)
		}
		f.Period = n
		return nil
	}

	v, err := amount.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", q.Key, err)
	}
	q.store(f, v)
	if q.display != nil {
		*q.display(f) = strings.TrimSpace(raw)
	}
	return nil
}

// SetValue stores an already numeric value into f
func (q Quantity) SetValue(f *Financials, v float64) error {
	switch q.Kind {
	case KindText:
		*q.text(f) = strconv.FormatFloat(v, 'f', -1, 64)
		return nil
	case KindPeriod:
		if v != float64(int(v)) {
			return fmt.Errorf("%w: %v", ErrInvalidPeriod, v)
		}
		f.Period = int(v)
		return nil
	}

	q.store(f, v)
	if q.display != nil {
		*q.display(f) = amount.Format(v)
	}
	return nil
}

// String renders the current value held in f, for flag help and debugging
func (q Quantity) String(f *Financials) string {
	switch q.Kind {
	case KindText:
		return *q.text(f)
	case KindPeriod:
		return strconv.Itoa(f.Period)
	case KindScalar:
		v := *q.scalar(f)
		if !v.Valid {
			return ""
		}
		return amount.Format(v.Float64)
	default:
		s := *q.series(f)
		if len(s) == 0 {
			return ""
		}
		parts := make([]string, len(s))
		for i, v := range s {
			parts[i] = amount.Format(v)
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
}

// Series returns the series this quantity populates, or nil for non-series kinds
func (q Quantity) Series(f *Financials) Series {
	if q.Kind != KindSeries {
		return nil
	}
	return *q.series(f)
}

// Merge applies every quantity given in src on top of dst: text, scalars and the
// reporting period replace, series append their periods after the ones in dst.
func Merge(dst, src *Financials) {
	for _, q := range Quantities {
		switch q.Kind {
		case KindText:
			if v := *q.text(src); v != "" {
				*q.text(dst) = v
			}
		case KindPeriod:
			if src.Period != 0 {
				dst.Period = src.Period
			}
		case KindScalar:
			if v := *q.scalar(src); v.Valid {
				*q.scalar(dst) = v
				if q.display != nil {
					*q.display(dst) = *q.display(src)
				}
			}
		case KindSeries:
			for _, v := range *q.series(src) {
				q.series(dst).Append(v)
			}
		}
	}
}

func (q Quantity) store(f *Financials, v float64) {
	if q.Kind == KindSeries {
		q.series(f).Append(v)
		return
	}
	*q.scalar(f) = null.FloatFrom(v)
}
