package financials

import (
	"github.com/guregu/null/v6"
)

// MaxPeriods is the largest number of periods a single series may hold
const MaxPeriods = 12

// Series is an ordered run of per-period values, most recent period first.
// An empty series means the quantity was not provided.
type Series []float64

// Len returns the number of populated periods
func (s Series) Len() int {
	return len(s)
}

// Has reports whether at least one period was provided
func (s Series) Has() bool {
	return len(s) > 0
}

// Latest returns the most recent period, or 0 when the series is empty
func (s Series) Latest() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Append adds the next older period
func (s *Series) Append(v float64) {
	*s = append(*s, v)
}

// Financials is one company's input set. It is populated once from flags or an
// input file and then only read.
type Financials struct {
	Name          string `key:"name"`
	MarketCapText string

	Price           null.Float `key:"price"`
	MarketCap       null.Float `key:"mktcap"`
	EnterpriseValue null.Float `key:"ev"`

	// Reporting period length in quarters (0 = unset)
	Period int `key:"reporting-period" validate:"min=0,max=4"`

	Dividends                Series `key:"div" validate:"max=12"`
	DividendsPerShare        Series `key:"div-ps" validate:"max=12"`
	Earnings                 Series `key:"earn" validate:"max=12"`
	EarningsPerShare         Series `key:"earn-ps" validate:"max=12"`
	OperatingCashFlow        Series `key:"cfo" validate:"max=12"`
	EBIT                     Series `key:"ebit" validate:"max=12"`
	EBITDA                   Series `key:"ebitda" validate:"max=12"`
	DepreciationAmortization Series `key:"da" validate:"max=12"`
	Capex                    Series `key:"capex" validate:"max=12"`
	CashTaxes                Series `key:"tax" validate:"max=12"`

	Assets             Series `key:"assets" validate:"max=12"`
	Intangibles        Series `key:"intangibles" validate:"max=12"`
	Goodwill           Series `key:"goodwill" validate:"max=12"`
	Liabilities        Series `key:"liabilities" validate:"max=12"`
	ShortTermDebt      Series `key:"std" validate:"max=12"`
	LongTermDebt       Series `key:"ltd" validate:"max=12"`
	CurrentAssets      Series `key:"current-assets" validate:"max=12"`
	CurrentLiabilities Series `key:"current-liabilities" validate:"max=12"`
	Inventories        Series `key:"inventories" validate:"max=12"`
	Cash               Series `key:"cash" validate:"max=12"`
	MinorityInterest   Series `key:"minority-interest" validate:"max=12"`
}

// PeriodSet reports whether a reporting period length was given
func (f *Financials) PeriodSet() bool {
	return f.Period > 0
}

// MarketCapValue returns the market cap when it was given and is non-zero
func (f *Financials) MarketCapValue() (float64, bool) {
	return present(f.MarketCap)
}

// PriceValue returns the share price when it was given and is non-zero
func (f *Financials) PriceValue() (float64, bool) {
	return present(f.Price)
}

// EnterpriseValueOverride returns the direct EV input when it was given and is non-zero
func (f *Financials) EnterpriseValueOverride() (float64, bool) {
	return present(f.EnterpriseValue)
}

func present(v null.Float) (float64, bool) {
	if !v.Valid || v.Float64 == 0 {
		return 0, false
	}
	return v.Float64, true
}
