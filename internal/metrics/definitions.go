package metrics

import (
	"github.com/wonny/fundamentals/internal/financials"
)

// Formula computes one candidate value from the inputs and the metrics derived
// so far. ok is false when an input is missing or the value is undefined.
type Formula func(f *financials.Financials, set Set) (value float64, quarters int, ok bool)

// Candidate is one named way of computing a metric
type Candidate struct {
	Name    string
	Formula Formula
}

// Definition lists the candidate formulas of one metric in evaluation order.
// DependsOn names metrics that must be derived before this one.
type Definition struct {
	Name       Name
	Kind       Kind
	DependsOn  []Name
	Candidates []Candidate
}

// Definitions returns the metric table in evaluation (and report) order
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

var definitions = []Definition{
	{Name: EnterpriseValue, Kind: KindCurrency, Candidates: []Candidate{
		{"components", evFromComponents},
		{"direct", evDirect},
	}},
	{Name: Earnings, Kind: KindCurrency, Candidates: []Candidate{
		{"earnings", averaged(func(f *financials.Financials) financials.Series { return f.Earnings })},
	}},
	{Name: EBITDA, Kind: KindCurrency, Candidates: []Candidate{
		{"ebit+da", ebitdaFromEBIT},
		{"direct", annualized(func(f *financials.Financials) financials.Series { return f.EBITDA })},
	}},
	{Name: FreeCashFlow, Kind: KindCurrency, Candidates: []Candidate{
		{"ebit+da", fcfFromEBIT},
		{"direct", fcfFromEBITDA},
	}},
	{Name: PriceToFCF, Kind: KindRatio, DependsOn: []Name{FreeCashFlow}, Candidates: []Candidate{
		{"mktcap", marketCapOver(FreeCashFlow)},
	}},
	{Name: OperatingCashFlow, Kind: KindCurrency, Candidates: []Candidate{
		{"cfo", averaged(func(f *financials.Financials) financials.Series { return f.OperatingCashFlow })},
	}},
	{Name: PriceToCFO, Kind: KindRatio, DependsOn: []Name{OperatingCashFlow}, Candidates: []Candidate{
		{"mktcap", marketCapOver(OperatingCashFlow)},
	}},
	{Name: EVToEBITDA, Kind: KindRatio, DependsOn: []Name{EnterpriseValue, EBITDA}, Candidates: []Candidate{
		{"ev/ebitda", evToEBITDA},
	}},
	{Name: PriceToEarnings, Kind: KindRatio, Candidates: []Candidate{
		{"mktcap", peFromMarketCap},
		{"per-share", peFromPrice},
	}},
	{Name: BookValue, Kind: KindCurrency, Candidates: []Candidate{
		{"balance-sheet", bookValue},
	}},
	{Name: PriceToBook, Kind: KindRatio, DependsOn: []Name{BookValue}, Candidates: []Candidate{
		{"mktcap", marketCapOver(BookValue)},
	}},
	{Name: PriceToCash, Kind: KindRatio, Candidates: []Candidate{
		{"mktcap", priceToCash},
	}},
	{Name: DividendYield, Kind: KindRatio, Candidates: []Candidate{
		{"per-share", yieldFromPrice},
		{"mktcap", yieldFromMarketCap},
	}},
	{Name: DividendCoverage, Kind: KindRatio, Candidates: []Candidate{
		{"total", coverage(
			func(f *financials.Financials) financials.Series { return f.Earnings },
			func(f *financials.Financials) financials.Series { return f.Dividends })},
		{"per-share", coverage(
			func(f *financials.Financials) financials.Series { return f.EarningsPerShare },
			func(f *financials.Financials) financials.Series { return f.DividendsPerShare })},
	}},
	{Name: ReturnOnCapital, Kind: KindRatio, DependsOn: []Name{BookValue}, Candidates: []Candidate{
		{"ebit/capital", returnOnCapital},
	}},
	{Name: ReturnOnEquity, Kind: KindRatio, DependsOn: []Name{BookValue}, Candidates: []Candidate{
		{"earnings/book", returnOnEquity},
	}},
	{Name: CurrentRatio, Kind: KindRatio, Candidates: []Candidate{
		{"balance-sheet", currentRatio},
	}},
	{Name: QuickRatio, Kind: KindRatio, Candidates: []Candidate{
		{"balance-sheet", quickRatio},
	}},
	{Name: LiabilitiesToBook, Kind: KindRatio, DependsOn: []Name{BookValue}, Candidates: []Candidate{
		{"liabilities/book", overBook(func(f *financials.Financials) (float64, bool) {
			return f.Liabilities.Latest(), f.Liabilities.Has()
		})},
	}},
	{Name: DebtToEquity, Kind: KindRatio, DependsOn: []Name{BookValue}, Candidates: []Candidate{
		{"debt/book", overBook(totalDebt)},
	}},
	{Name: DebtToEBITDA, Kind: KindRatio, DependsOn: []Name{EBITDA}, Candidates: []Candidate{
		{"debt/ebitda", debtToEBITDA},
	}},
	{Name: ShortDebtShare, Kind: KindRatio, Candidates: []Candidate{
		{"std/debt", debtShare(func(f *financials.Financials) float64 { return f.ShortTermDebt.Latest() })},
	}},
	{Name: LongDebtShare, Kind: KindRatio, Candidates: []Candidate{
		{"ltd/debt", debtShare(func(f *financials.Financials) float64 { return f.LongTermDebt.Latest() })},
	}},
}

// averaged is the plain per-period average of one series. The reporting
// period is still required since it sizes the coverage.
func averaged(series func(*financials.Financials) financials.Series) Formula {
	return func(f *financials.Financials, _ Set) (float64, int, bool) {
		s := series(f)
		if !s.Has() || !f.PeriodSet() {
			return 0, 0, false
		}
		v, ok := finite(Average(s))
		return v, f.Period * s.Len(), ok
	}
}

// annualized is the annualized average of one series, covering every period in it
func annualized(series func(*financials.Financials) financials.Series) Formula {
	return func(f *financials.Financials, _ Set) (float64, int, bool) {
		s := series(f)
		if !s.Has() || !f.PeriodSet() {
			return 0, 0, false
		}
		v, ok := finite(AnnualizedAverage(s, f.Period))
		return v, f.Period * s.Len(), ok
	}
}

// marketCapOver divides market cap by an already derived metric and inherits its coverage
func marketCapOver(name Name) Formula {
	return func(f *financials.Financials, set Set) (float64, int, bool) {
		mc, ok := f.MarketCapValue()
		if !ok {
			return 0, 0, false
		}
		r, ok := set.Get(name)
		if !ok {
			return 0, 0, false
		}
		v, ok := ratio(mc, r.Value)
		return v, r.Quarters, ok
	}
}

func evFromComponents(f *financials.Financials, _ Set) (float64, int, bool) {
	mc, ok := f.MarketCapValue()
	if !ok || !has(f.ShortTermDebt, f.LongTermDebt, f.MinorityInterest, f.Cash) {
		return 0, 0, false
	}
	v, ok := finite(mc + f.ShortTermDebt.Latest() + f.LongTermDebt.Latest() +
		f.MinorityInterest.Latest() - f.Cash.Latest())
	return v, 0, ok
}

func evDirect(f *financials.Financials, _ Set) (float64, int, bool) {
	v, ok := f.EnterpriseValueOverride()
	return v, 0, ok
}

func ebitdaFromEBIT(f *financials.Financials, _ Set) (float64, int, bool) {
	if !has(f.EBIT, f.DepreciationAmortization) || !f.PeriodSet() {
		return 0, 0, false
	}
	v, ok := finite(AnnualizedAverage(f.EBIT, f.Period) +
		AnnualizedAverage(f.DepreciationAmortization, f.Period))
	return v, MinCoverageQuarters(f.Period, f.EBIT, f.DepreciationAmortization), ok
}

func fcfFromEBIT(f *financials.Financials, _ Set) (float64, int, bool) {
	if !has(f.EBIT, f.DepreciationAmortization, f.Capex, f.CashTaxes) || !f.PeriodSet() {
		return 0, 0, false
	}
	p := f.Period
	v, ok := finite(AnnualizedAverage(f.EBIT, p) + AnnualizedAverage(f.DepreciationAmortization, p) -
		AnnualizedAverage(f.Capex, p) - AnnualizedAverage(f.CashTaxes, p))
	return v, MinCoverageQuarters(p, f.EBIT, f.DepreciationAmortization, f.Capex, f.CashTaxes), ok
}

func fcfFromEBITDA(f *financials.Financials, _ Set) (float64, int, bool) {
	if !has(f.EBITDA, f.Capex, f.CashTaxes) || !f.PeriodSet() {
		return 0, 0, false
	}
	p := f.Period
	v, ok := finite(AnnualizedAverage(f.EBITDA, p) - AnnualizedAverage(f.Capex, p) -
		AnnualizedAverage(f.CashTaxes, p))
	return v, MinCoverageQuarters(p, f.EBITDA, f.Capex, f.CashTaxes), ok
}

func evToEBITDA(_ *financials.Financials, set Set) (float64, int, bool) {
	ev, ok := set.Value(EnterpriseValue)
	if !ok || ev == 0 {
		return 0, 0, false
	}
	ebitda, ok := set.Get(EBITDA)
	if !ok {
		return 0, 0, false
	}
	v, ok := ratio(ev, ebitda.Value)
	return v, ebitda.Quarters, ok
}

func peFromMarketCap(f *financials.Financials, _ Set) (float64, int, bool) {
	mc, ok := f.MarketCapValue()
	if !ok || !f.Earnings.Has() || !f.PeriodSet() {
		return 0, 0, false
	}
	v, ok := ratio(mc, AnnualizedAverage(f.Earnings, f.Period))
	return v, f.Period * f.Earnings.Len(), ok
}

func peFromPrice(f *financials.Financials, _ Set) (float64, int, bool) {
	price, ok := f.PriceValue()
	if !ok || !f.EarningsPerShare.Has() || !f.PeriodSet() {
		return 0, 0, false
	}
	v, ok := ratio(price, AnnualizedAverage(f.EarningsPerShare, f.Period))
	return v, f.Period * f.EarningsPerShare.Len(), ok
}

func bookValue(f *financials.Financials, _ Set) (float64, int, bool) {
	if !has(f.Assets, f.Intangibles, f.Goodwill, f.Liabilities) {
		return 0, 0, false
	}
	v, ok := finite(f.Assets.Latest() - f.Intangibles.Latest() - f.Goodwill.Latest() - f.Liabilities.Latest())
	return v, 0, ok
}

func priceToCash(f *financials.Financials, _ Set) (float64, int, bool) {
	mc, ok := f.MarketCapValue()
	if !ok || !f.Cash.Has() {
		return 0, 0, false
	}
	v, ok := ratio(mc, f.Cash.Latest())
	return v, 0, ok
}

func yieldFromPrice(f *financials.Financials, _ Set) (float64, int, bool) {
	price, ok := f.PriceValue()
	if !ok || !f.DividendsPerShare.Has() || !f.PeriodSet() {
		return 0, 0, false
	}
	v, ok := ratio(AnnualizedAverage(f.DividendsPerShare, f.Period), price)
	return v, f.Period * f.DividendsPerShare.Len(), ok
}

func yieldFromMarketCap(f *financials.Financials, _ Set) (float64, int, bool) {
	mc, ok := f.MarketCapValue()
	if !ok || !f.Dividends.Has() || !f.PeriodSet() {
		return 0, 0, false
	}
	v, ok := ratio(AnnualizedAverage(f.Dividends, f.Period), mc)
	return v, f.Period * f.Dividends.Len(), ok
}

// coverage is earnings over dividends; a company paying no dividends is
// covered exactly once.
func coverage(earnings, dividends func(*financials.Financials) financials.Series) Formula {
	return func(f *financials.Financials, _ Set) (float64, int, bool) {
		earn, div := earnings(f), dividends(f)
		if !has(earn, div) || !f.PeriodSet() {
			return 0, 0, false
		}
		quarters := MinCoverageQuarters(f.Period, earn, div)
		if Sum(div) == 0 {
			return 1, quarters, true
		}
		v, ok := ratio(AnnualizedAverage(earn, f.Period), AnnualizedAverage(div, f.Period))
		return v, quarters, ok
	}
}

// returnOnCapital divides annualized EBIT by debt − book − cash at the latest period
func returnOnCapital(f *financials.Financials, set Set) (float64, int, bool) {
	book, ok := set.Value(BookValue)
	if !ok || !has(f.EBIT, f.ShortTermDebt, f.LongTermDebt, f.Cash) || !f.PeriodSet() {
		return 0, 0, false
	}
	debt, _ := totalDebt(f)
	v, ok := ratio(AnnualizedAverage(f.EBIT, f.Period), debt-book-f.Cash.Latest())
	return v, f.Period * f.EBIT.Len(), ok
}

func returnOnEquity(f *financials.Financials, set Set) (float64, int, bool) {
	book, ok := set.Value(BookValue)
	if !ok || !f.Earnings.Has() || !f.PeriodSet() {
		return 0, 0, false
	}
	v, ok := ratio(AnnualizedAverage(f.Earnings, f.Period), book)
	return v, f.Period * f.Earnings.Len(), ok
}

func currentRatio(f *financials.Financials, _ Set) (float64, int, bool) {
	if !has(f.CurrentAssets, f.CurrentLiabilities) {
		return 0, 0, false
	}
	v, ok := ratio(f.CurrentAssets.Latest(), f.CurrentLiabilities.Latest())
	return v, 0, ok
}

func quickRatio(f *financials.Financials, _ Set) (float64, int, bool) {
	if !has(f.CurrentAssets, f.CurrentLiabilities, f.Inventories) {
		return 0, 0, false
	}
	v, ok := ratio(f.CurrentAssets.Latest()-f.Inventories.Latest(), f.CurrentLiabilities.Latest())
	return v, 0, ok
}

// totalDebt is short-term plus long-term debt at the latest period; both must be given
func totalDebt(f *financials.Financials) (float64, bool) {
	if !has(f.ShortTermDebt, f.LongTermDebt) {
		return 0, false
	}
	return f.ShortTermDebt.Latest() + f.LongTermDebt.Latest(), true
}

func overBook(numerator func(*financials.Financials) (float64, bool)) Formula {
	return func(f *financials.Financials, set Set) (float64, int, bool) {
		book, ok := set.Value(BookValue)
		if !ok {
			return 0, 0, false
		}
		num, ok := numerator(f)
		if !ok {
			return 0, 0, false
		}
		v, ok := ratio(num, book)
		return v, 0, ok
	}
}

func debtToEBITDA(f *financials.Financials, set Set) (float64, int, bool) {
	ebitda, ok := set.Get(EBITDA)
	if !ok {
		return 0, 0, false
	}
	debt, ok := totalDebt(f)
	if !ok {
		return 0, 0, false
	}
	v, ok := ratio(debt, ebitda.Value)
	return v, ebitda.Quarters, ok
}

func debtShare(part func(*financials.Financials) float64) Formula {
	return func(f *financials.Financials, _ Set) (float64, int, bool) {
		debt, ok := totalDebt(f)
		if !ok {
			return 0, 0, false
		}
		v, ok := ratio(part(f), debt)
		return v, 0, ok
	}
}
