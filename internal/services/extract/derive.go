package extract

import "FinGather/internal/domain/models"

// Derive computes trends, margins, leverage ratios and free cash flow from a
// metrics document. Each figure exists only when its inputs do; nothing here
// errors or panics on sparse data.
func Derive(doc *models.MetricsDocument) *models.DerivedFigures {
	d := &models.DerivedFigures{Trends: make(map[string]models.Trend)}
	if doc == nil {
		return d
	}

	for _, category := range []map[string]models.MetricSeries{doc.Income, doc.BalanceSheet, doc.CashFlow} {
		for name, series := range category {
			if t, ok := AnnualTrend(series); ok {
				d.Trends[name] = t
			}
		}
	}

	if rev := doc.Value("revenue"); rev != nil && *rev > 0 {
		if gp := doc.Value("gross_profit"); gp != nil {
			d.GrossMargin = ptr(*gp / *rev * 100)
		}
		if oi := doc.Value("operating_income"); oi != nil {
			d.OperatingMargin = ptr(*oi / *rev * 100)
		}
		if ni := doc.Value("net_income"); ni != nil {
			d.NetMargin = ptr(*ni / *rev * 100)
		}
	}

	liab := doc.Value("total_liabilities")
	equity := doc.Value("stockholders_equity")
	if liab != nil && equity != nil && *equity != 0 {
		d.DebtToEquity = ptr(*liab / *equity)
	}

	ca := doc.Value("current_assets")
	cl := doc.Value("current_liabilities")
	if ca != nil && cl != nil && *cl != 0 {
		d.CurrentRatio = ptr(*ca / *cl)
	}

	ltd := doc.Value("long_term_debt")
	cash := doc.Value("cash")
	if ltd != nil && cash != nil {
		d.NetDebt = ptr(*ltd - *cash)
	}

	ocf := doc.Value("operating_cash_flow")
	capex := doc.Value("capex")
	if ocf != nil && capex != nil {
		d.FreeCashFlow = ptr(*ocf - abs(*capex))
	}

	return d
}

// AnnualTrend is the percent change between the two most recent annual
// observations of a series. Undefined (ok=false) when fewer than two annual
// observations carry values or the earlier value is zero.
func AnnualTrend(series models.MetricSeries) (models.Trend, bool) {
	annual := series.Annual()
	if len(annual) < 2 {
		return models.Trend{}, false
	}
	prev := annual[len(annual)-2].Value
	curr := annual[len(annual)-1].Value
	if prev == nil || curr == nil || *prev == 0 {
		return models.Trend{}, false
	}
	pct := (*curr - *prev) / abs(*prev) * 100
	dir := models.TrendFlat
	switch {
	case pct > 0:
		dir = models.TrendUp
	case pct < 0:
		dir = models.TrendDown
	}
	return models.Trend{ChangePct: pct, Direction: dir}, true
}

func ptr(v float64) *float64 { return &v }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
