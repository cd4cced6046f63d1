// Package report renders gathered data into markdown research documents.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/pkg/util"
)

// FundamentalsInput is everything the fundamentals report needs.
type FundamentalsInput struct {
	Ticker    string
	Company   string
	CIK       string
	Theme     string
	Directive string
	Now       time.Time

	Metrics  *models.MetricsDocument
	Derived  *models.DerivedFigures
	Snapshot *models.CompanySnapshot
}

type metricLine struct {
	metric string
	label  string
	prefix string
}

var incomeLines = []metricLine{
	{"revenue", "Revenue", "$"},
	{"gross_profit", "Gross Profit", "$"},
	{"operating_income", "Operating Income", "$"},
	{"net_income", "Net Income", "$"},
	{"eps_diluted", "EPS (Diluted)", "$"},
}

var balanceLines = []metricLine{
	{"total_assets", "Total Assets", "$"},
	{"total_liabilities", "Total Liabilities", "$"},
	{"stockholders_equity", "Stockholders' Equity", "$"},
	{"cash", "Cash & Equivalents", "$"},
	{"long_term_debt", "Long-Term Debt", "$"},
	{"current_assets", "Current Assets", "$"},
	{"current_liabilities", "Current Liabilities", "$"},
	{"shares_outstanding", "Shares Outstanding", ""},
}

var cashFlowLines = []metricLine{
	{"operating_cash_flow", "Operating Cash Flow", "$"},
	{"capex", "Capital Expenditures", "$"},
	{"dividends_paid", "Dividends Paid", "$"},
}

// Fundamentals renders the full fundamentals research document.
func Fundamentals(in FundamentalsInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Fundamental Research Report: $%s (%s)\n", in.Ticker, in.Company)
	fmt.Fprintf(&b, "*Generated: %s*\n", in.Now.UTC().Format(time.RFC3339))
	if in.CIK != "" {
		fmt.Fprintf(&b, "*SEC CIK: %s*\n", in.CIK)
	}
	if in.Theme != "" {
		fmt.Fprintf(&b, "*Theme: %s*\n", in.Theme)
	}
	if in.Directive != "" {
		fmt.Fprintf(&b, "*Directive: %s*\n", in.Directive)
	}
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "# Fundamental Analysis: $%s\n\n", in.Ticker)

	writeOverview(&b, in.Snapshot)

	doc := in.Metrics
	derived := in.Derived
	if derived == nil {
		derived = &models.DerivedFigures{}
	}

	if doc != nil && len(doc.Income) > 0 {
		b.WriteString("## Income Statement (from SEC filings)\n\n")
		writeMetricLines(&b, doc.Income, incomeLines, derived)
		writeMargins(&b, derived)
		b.WriteString("\n")
		writeAnnualHistory(&b, doc)
	}

	if doc != nil && len(doc.BalanceSheet) > 0 {
		b.WriteString("## Balance Sheet (from SEC filings)\n\n")
		writeMetricLines(&b, doc.BalanceSheet, balanceLines, derived)
		writeKeyRatios(&b, derived)
		b.WriteString("\n")
	}

	if doc != nil && len(doc.CashFlow) > 0 {
		b.WriteString("## Cash Flow (from SEC filings)\n\n")
		writeMetricLines(&b, doc.CashFlow, cashFlowLines, derived)
		if derived.FreeCashFlow != nil {
			fmt.Fprintf(&b, "- **Free Cash Flow**: %s\n", util.FormatNumber(*derived.FreeCashFlow, "$", ""))
		}
		b.WriteString("\n")
	}

	writeRecommendations(&b, in.Snapshot)
	writeEarnings(&b, in.Snapshot)

	if doc.MetricCount() == 0 {
		b.WriteString("*No SEC EDGAR XBRL data found for this ticker.*\n")
		b.WriteString("*This may mean the company files under a different CIK or is not a US-listed company.*\n\n")
	}

	return b.String()
}

func writeOverview(b *strings.Builder, s *models.CompanySnapshot) {
	if s.Empty() {
		return
	}
	b.WriteString("## Company Overview\n\n")
	if s.Name != "" {
		fmt.Fprintf(b, "**%s**\n", s.Name)
	}
	if s.Sector != "" || s.Industry != "" {
		var parts []string
		if s.Sector != "" {
			parts = append(parts, s.Sector)
		}
		if s.Industry != "" {
			parts = append(parts, s.Industry)
		}
		fmt.Fprintf(b, "*%s*\n", strings.Join(parts, " — "))
	}
	b.WriteString("\n")

	if s.MarketCap != nil {
		fmt.Fprintf(b, "- **Market Cap**: %s\n", util.FormatNumber(*s.MarketCap, "$", ""))
	}
	if s.PETrailing != nil {
		fmt.Fprintf(b, "- **P/E (Trailing)**: %.1f\n", *s.PETrailing)
	}
	if s.PriceToBook != nil {
		fmt.Fprintf(b, "- **P/B**: %.2f\n", *s.PriceToBook)
	}
	if s.DividendYield != nil {
		fmt.Fprintf(b, "- **Dividend Yield**: %.2f%%\n", *s.DividendYield)
	}
	if s.Beta != nil {
		fmt.Fprintf(b, "- **Beta**: %.2f\n", *s.Beta)
	}
	if s.High52W != nil && s.Low52W != nil {
		fmt.Fprintf(b, "- **52-Week Range**: $%.2f — $%.2f\n", *s.Low52W, *s.High52W)
	}
	b.WriteString("\n")

	if s.Description != "" {
		fmt.Fprintf(b, "> %s\n\n", truncate(s.Description, 500))
	}
}

func writeMetricLines(b *strings.Builder, category map[string]models.MetricSeries, lines []metricLine, derived *models.DerivedFigures) {
	for _, ml := range lines {
		series, ok := category[ml.metric]
		if !ok {
			continue
		}
		latest, ok := latestPreferred(series)
		if !ok || latest.Value == nil {
			continue
		}
		fy := "?"
		if latest.FiscalYear != nil {
			fy = fmt.Sprintf("%d", *latest.FiscalYear)
		}
		line := fmt.Sprintf("- **%s**: %s (FY%s)", ml.label, util.FormatNumber(*latest.Value, ml.prefix, ""), fy)
		if t, ok := derived.Trends[ml.metric]; ok {
			line += " " + FormatTrend(t)
		}
		b.WriteString(line + "\n")
	}
}

// FormatTrend renders a trend as an arrow plus signed YoY percent.
func FormatTrend(t models.Trend) string {
	arrow := "➡️"
	switch t.Direction {
	case models.TrendUp:
		arrow = "📈"
	case models.TrendDown:
		arrow = "📉"
	}
	return fmt.Sprintf("%s %+.1f%% YoY", arrow, t.ChangePct)
}

func writeMargins(b *strings.Builder, d *models.DerivedFigures) {
	var margins []string
	if d.GrossMargin != nil {
		margins = append(margins, fmt.Sprintf("Gross: %.1f%%", *d.GrossMargin))
	}
	if d.OperatingMargin != nil {
		margins = append(margins, fmt.Sprintf("Operating: %.1f%%", *d.OperatingMargin))
	}
	if d.NetMargin != nil {
		margins = append(margins, fmt.Sprintf("Net: %.1f%%", *d.NetMargin))
	}
	if len(margins) > 0 {
		fmt.Fprintf(b, "- **Margins**: %s\n", strings.Join(margins, " | "))
	}
}

func writeKeyRatios(b *strings.Builder, d *models.DerivedFigures) {
	var ratios []string
	if d.DebtToEquity != nil {
		ratios = append(ratios, fmt.Sprintf("D/E: %.2f", *d.DebtToEquity))
	}
	if d.CurrentRatio != nil {
		ratios = append(ratios, fmt.Sprintf("Current: %.2f", *d.CurrentRatio))
	}
	if d.NetDebt != nil {
		ratios = append(ratios, fmt.Sprintf("Net Debt: %s", util.FormatNumber(*d.NetDebt, "$", "")))
	}
	if len(ratios) > 0 {
		fmt.Fprintf(b, "- **Key Ratios**: %s\n", strings.Join(ratios, " | "))
	}
}

// writeAnnualHistory renders the trailing annual revenue table: one row per
// fiscal year (FY-period entries preferred), net income and EPS matched by
// period end.
func writeAnnualHistory(b *strings.Builder, doc *models.MetricsDocument) {
	annual := doc.Income["revenue"].Annual()
	byYear := make(map[int]models.Observation)
	for _, o := range annual {
		if o.FiscalYear == nil {
			continue
		}
		if _, seen := byYear[*o.FiscalYear]; !seen || o.FiscalPeriod == "FY" {
			byYear[*o.FiscalYear] = o
		}
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	if len(years) < 2 {
		return
	}
	if len(years) > 5 {
		years = years[len(years)-5:]
	}

	b.WriteString("### Annual Revenue History\n\n")
	b.WriteString("| Fiscal Year | Revenue | Net Income | EPS |\n")
	b.WriteString("|-------------|---------|------------|-----|\n")
	for _, y := range years {
		rev := byYear[y]
		ni := matchByPeriodEnd(doc.Income["net_income"], rev.PeriodEnd)
		eps := matchByPeriodEnd(doc.Income["eps_diluted"], rev.PeriodEnd)
		fmt.Fprintf(b, "| FY%d | %s | %s | %s |\n",
			y, cellValue(rev.Value), cellValue(ni), cellValue(eps))
	}
	b.WriteString("\n")
}

func matchByPeriodEnd(series models.MetricSeries, end time.Time) *float64 {
	for _, o := range series {
		if o.Filing.Base() == models.FilingAnnual && o.PeriodEnd.Equal(end) {
			return o.Value
		}
	}
	return nil
}

func cellValue(v *float64) string {
	if v == nil {
		return "—"
	}
	return util.FormatNumber(*v, "", "")
}

func latestPreferred(series models.MetricSeries) (models.Observation, bool) {
	if o, ok := series.Latest(models.FilingAnnual); ok {
		return o, true
	}
	return series.Latest("")
}

func writeRecommendations(b *strings.Builder, s *models.CompanySnapshot) {
	if s == nil || len(s.Recommendations) == 0 {
		return
	}
	recs := s.Recommendations
	if len(recs) > 5 {
		recs = recs[:5]
	}
	b.WriteString("## Analyst Recommendations\n\n")
	b.WriteString("| Period | Strong Buy | Buy | Hold | Sell | Strong Sell |\n")
	b.WriteString("|--------|-----------|-----|------|------|-------------|\n")
	for _, r := range recs {
		fmt.Fprintf(b, "| %s | %d | %d | %d | %d | %d |\n",
			r.Period, r.StrongBuy, r.Buy, r.Hold, r.Sell, r.StrongSell)
	}
	b.WriteString("\n")
}

func writeEarnings(b *strings.Builder, s *models.CompanySnapshot) {
	if s == nil || len(s.Earnings) == 0 {
		return
	}
	earnings := s.Earnings
	if len(earnings) > 8 {
		earnings = earnings[:8]
	}
	b.WriteString("## Earnings History\n\n")
	b.WriteString("| Quarter | EPS Estimate | EPS Actual | Surprise |\n")
	b.WriteString("|---------|-------------|------------|----------|\n")
	for _, e := range earnings {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			e.Period,
			util.FormatOptional(e.Estimate, "$%.2f"),
			util.FormatOptional(e.Actual, "$%.2f"),
			util.FormatOptional(e.Surprise, "%.1f%%"))
	}
	b.WriteString("\n")
}
