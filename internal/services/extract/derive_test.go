package extract

import (
	"math"
	"testing"
	"time"

	"FinGather/internal/domain/models"
)

func annualObs(val float64, year int) models.Observation {
	return models.Observation{
		Value:     &val,
		PeriodEnd: time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
		Filing:    models.FilingAnnual,
	}
}

func singleSeries(vals ...float64) models.MetricSeries {
	s := make(models.MetricSeries, 0, len(vals))
	for i, v := range vals {
		s = append(s, annualObs(v, 2020+i))
	}
	return s
}

func TestAnnualTrend(t *testing.T) {
	trend, ok := AnnualTrend(singleSeries(100, 109.3))
	if !ok {
		t.Fatalf("expected a trend")
	}
	if math.Abs(trend.ChangePct-9.3) > 1e-9 {
		t.Fatalf("expected +9.3%%, got %v", trend.ChangePct)
	}
	if trend.Direction != models.TrendUp {
		t.Fatalf("expected up, got %s", trend.Direction)
	}
}

func TestAnnualTrendNegativePrevious(t *testing.T) {
	// change is measured against |prev|: -100 -> -50 improves by +50%
	trend, ok := AnnualTrend(singleSeries(-100, -50))
	if !ok {
		t.Fatalf("expected a trend")
	}
	if math.Abs(trend.ChangePct-50) > 1e-9 {
		t.Fatalf("expected +50%%, got %v", trend.ChangePct)
	}
	if trend.Direction != models.TrendUp {
		t.Fatalf("expected up, got %s", trend.Direction)
	}
}

func TestAnnualTrendUndefined(t *testing.T) {
	if _, ok := AnnualTrend(singleSeries(100)); ok {
		t.Fatalf("one annual observation must not produce a trend")
	}
	if _, ok := AnnualTrend(singleSeries(0, 100)); ok {
		t.Fatalf("zero base must not produce a trend")
	}
	quarterly := models.MetricSeries{
		{Value: ptr(1), Filing: models.FilingQuarterly},
		{Value: ptr(2), Filing: models.FilingQuarterly},
	}
	if _, ok := AnnualTrend(quarterly); ok {
		t.Fatalf("quarterly-only series must not produce a trend")
	}
}

func TestDeriveMargins(t *testing.T) {
	doc := models.NewMetricsDocument()
	doc.Income["revenue"] = singleSeries(1000)
	doc.Income["gross_profit"] = singleSeries(400)
	doc.Income["operating_income"] = singleSeries(250)
	doc.Income["net_income"] = singleSeries(150)

	d := Derive(doc)
	if d.GrossMargin == nil || math.Abs(*d.GrossMargin-40) > 1e-9 {
		t.Fatalf("unexpected gross margin %v", d.GrossMargin)
	}
	if d.OperatingMargin == nil || math.Abs(*d.OperatingMargin-25) > 1e-9 {
		t.Fatalf("unexpected operating margin %v", d.OperatingMargin)
	}
	if d.NetMargin == nil || math.Abs(*d.NetMargin-15) > 1e-9 {
		t.Fatalf("unexpected net margin %v", d.NetMargin)
	}
}

func TestDeriveNoMarginsWithoutRevenue(t *testing.T) {
	doc := models.NewMetricsDocument()
	doc.Income["gross_profit"] = singleSeries(400)

	d := Derive(doc)
	if d.GrossMargin != nil {
		t.Fatalf("margins require revenue")
	}
}

func TestDeriveRatiosAndNetDebt(t *testing.T) {
	doc := models.NewMetricsDocument()
	doc.BalanceSheet["total_liabilities"] = singleSeries(600)
	doc.BalanceSheet["stockholders_equity"] = singleSeries(300)
	doc.BalanceSheet["current_assets"] = singleSeries(200)
	doc.BalanceSheet["current_liabilities"] = singleSeries(100)
	doc.BalanceSheet["long_term_debt"] = singleSeries(500)
	doc.BalanceSheet["cash"] = singleSeries(120)

	d := Derive(doc)
	if d.DebtToEquity == nil || math.Abs(*d.DebtToEquity-2) > 1e-9 {
		t.Fatalf("unexpected d/e %v", d.DebtToEquity)
	}
	if d.CurrentRatio == nil || math.Abs(*d.CurrentRatio-2) > 1e-9 {
		t.Fatalf("unexpected current ratio %v", d.CurrentRatio)
	}
	if d.NetDebt == nil || math.Abs(*d.NetDebt-380) > 1e-9 {
		t.Fatalf("unexpected net debt %v", d.NetDebt)
	}
}

func TestDeriveNetDebtNeedsBothSides(t *testing.T) {
	doc := models.NewMetricsDocument()
	doc.BalanceSheet["long_term_debt"] = singleSeries(500)

	if d := Derive(doc); d.NetDebt != nil {
		t.Fatalf("net debt without cash must be absent")
	}
}

func TestDeriveFreeCashFlow(t *testing.T) {
	doc := models.NewMetricsDocument()
	doc.CashFlow["operating_cash_flow"] = singleSeries(900)
	doc.CashFlow["capex"] = singleSeries(-200) // often reported negative

	d := Derive(doc)
	if d.FreeCashFlow == nil || math.Abs(*d.FreeCashFlow-700) > 1e-9 {
		t.Fatalf("unexpected fcf %v", d.FreeCashFlow)
	}
}

func TestDeriveNilDocument(t *testing.T) {
	d := Derive(nil)
	if d == nil || len(d.Trends) != 0 {
		t.Fatalf("nil document must derive to an empty result")
	}
}
