package metrics

import (
	"cmp"
	"slices"
)

// Name identifies an output metric; it doubles as the report label
type Name string

const (
	EnterpriseValue   Name = "EV"
	Earnings          Name = "Earnings"
	EBITDA            Name = "EBITDA"
	FreeCashFlow      Name = "FCF"
	PriceToFCF        Name = "P/FCF"
	OperatingCashFlow Name = "CFO"
	PriceToCFO        Name = "P/CFO"
	EVToEBITDA        Name = "EV/EBITDA"
	PriceToEarnings   Name = "P/E"
	BookValue         Name = "Book value"
	PriceToBook       Name = "P/B"
	PriceToCash       Name = "P/Cash"
	DividendYield     Name = "Dividend yield"
	DividendCoverage  Name = "Dividend coverage"
	ReturnOnCapital   Name = "ROC"
	ReturnOnEquity    Name = "ROE"
	CurrentRatio      Name = "Current ratio"
	QuickRatio        Name = "Quick ratio"
	LiabilitiesToBook Name = "L/E"
	DebtToEquity      Name = "D/E"
	DebtToEBITDA      Name = "Debt/EBITDA"
	ShortDebtShare    Name = "STD/D"
	LongDebtShare     Name = "LTD/D"
)

// Kind tells how a metric value is rendered
type Kind string

const (
	KindCurrency Kind = "currency"
	KindRatio    Kind = "ratio"
)

// Result is one computed metric.
// Computed distinguishes "not computable" from a true zero value.
type Result struct {
	Metric   Name
	Kind     Kind
	Value    float64
	Computed bool
	Quarters int    // periods used × reporting period length; 0 for point-in-time values
	Formula  string // candidate that produced Value
	Order    int    // position of the metric in the engine's table
}

// Set maps each computed metric to its result. Metrics that could not be
// computed are absent.
type Set map[Name]Result

// Get returns the result for name when it was computed
func (s Set) Get(name Name) (Result, bool) {
	r, ok := s[name]
	if !ok || !r.Computed {
		return Result{}, false
	}
	return r, true
}

// Value returns the computed value for name
func (s Set) Value(name Name) (float64, bool) {
	r, ok := s.Get(name)
	return r.Value, ok
}

// Ordered returns the computed results in the order of the table that
// produced them
func (s Set) Ordered() []Result {
	out := make([]Result, 0, len(s))
	for _, r := range s {
		if r.Computed {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b Result) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}
