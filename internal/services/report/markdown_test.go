package report

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"FinGather/internal/domain/models"
)

var reportNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func annual(val float64, year int) models.Observation {
	return models.Observation{
		Value:      &val,
		PeriodEnd:  time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
		Filing:     models.FilingAnnual,
		FiscalYear: iptr(year),
	}
}

func sampleDoc() *models.MetricsDocument {
	doc := models.NewMetricsDocument()
	doc.Income["revenue"] = models.MetricSeries{annual(3.2e9, 2023), annual(3.5e9, 2024)}
	doc.Income["net_income"] = models.MetricSeries{annual(150e6, 2023), annual(192.3e6, 2024)}
	doc.BalanceSheet["total_assets"] = models.MetricSeries{annual(9e9, 2024)}
	doc.CashFlow["operating_cash_flow"] = models.MetricSeries{annual(400e6, 2024)}
	return doc
}

func TestFundamentalsHeader(t *testing.T) {
	out := Fundamentals(FundamentalsInput{
		Ticker:  "CAKE",
		Company: "Cheesecake Factory",
		CIK:     "0000887596",
		Theme:   "casual dining",
		Now:     reportNow,
		Metrics: sampleDoc(),
	})

	for _, want := range []string{
		"# Fundamental Research Report: $CAKE (Cheesecake Factory)",
		"*SEC CIK: 0000887596*",
		"*Theme: casual dining*",
		"# Fundamental Analysis: $CAKE",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in report:\n%s", want, out)
		}
	}
}

func TestFundamentalsSections(t *testing.T) {
	trendUp := models.Trend{ChangePct: 9.4, Direction: models.TrendUp}
	out := Fundamentals(FundamentalsInput{
		Ticker:  "CAKE",
		Company: "Cheesecake Factory",
		Now:     reportNow,
		Metrics: sampleDoc(),
		Derived: &models.DerivedFigures{
			Trends:    map[string]models.Trend{"revenue": trendUp},
			NetMargin: fptr(5.5),
		},
	})

	for _, want := range []string{
		"## Income Statement (from SEC filings)",
		"- **Revenue**: $3.5B (FY2024) 📈 +9.4% YoY",
		"- **Net Income**: $192.3M (FY2024)",
		"- **Margins**: Net: 5.5%",
		"### Annual Revenue History",
		"| FY2024 | 3.5B | 192.3M |",
		"## Balance Sheet (from SEC filings)",
		"## Cash Flow (from SEC filings)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in report:\n%s", want, out)
		}
	}
}

func TestFundamentalsNoDataFallback(t *testing.T) {
	out := Fundamentals(FundamentalsInput{
		Ticker:  "ZZZZ",
		Company: "Unknown Co",
		Now:     reportNow,
		Metrics: models.NewMetricsDocument(),
	})
	if !strings.Contains(out, "*No SEC EDGAR XBRL data found for this ticker.*") {
		t.Fatalf("missing no-data fallback:\n%s", out)
	}
	if strings.Contains(out, "## Income Statement") {
		t.Fatalf("empty document must not render statement sections")
	}
}

func TestFundamentalsOverview(t *testing.T) {
	out := Fundamentals(FundamentalsInput{
		Ticker:  "CAKE",
		Company: "Cheesecake Factory",
		Now:     reportNow,
		Metrics: sampleDoc(),
		Snapshot: &models.CompanySnapshot{
			Name:       "The Cheesecake Factory Incorporated",
			Industry:   "Restaurants",
			MarketCap:  fptr(2.4e9),
			PETrailing: fptr(18.2),
			High52W:    fptr(58.99),
			Low52W:     fptr(32.10),
		},
	})

	for _, want := range []string{
		"## Company Overview",
		"- **Market Cap**: $2.4B",
		"- **P/E (Trailing)**: 18.2",
		"- **52-Week Range**: $32.10 — $58.99",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in report:\n%s", want, out)
		}
	}
}

func TestFundamentalsOverviewDescription(t *testing.T) {
	long := strings.Repeat("The company operates upscale casual dining restaurants. ", 12)
	out := Fundamentals(FundamentalsInput{
		Ticker:  "CAKE",
		Company: "Cheesecake Factory",
		Now:     reportNow,
		Metrics: sampleDoc(),
		Snapshot: &models.CompanySnapshot{
			Name:        "The Cheesecake Factory Incorporated",
			Description: long,
		},
	})

	if !strings.Contains(out, "> The company operates upscale casual dining restaurants.") {
		t.Fatalf("missing description blockquote:\n%s", out)
	}
	if strings.Contains(out, "> "+long) {
		t.Fatalf("long description must be truncated")
	}
	if !strings.Contains(out, "...") {
		t.Fatalf("truncated description missing ellipsis:\n%s", out)
	}
}

func TestFormatTrend(t *testing.T) {
	cases := []struct {
		trend models.Trend
		want  string
	}{
		{models.Trend{ChangePct: 9.3, Direction: models.TrendUp}, "📈 +9.3% YoY"},
		{models.Trend{ChangePct: -4.2, Direction: models.TrendDown}, "📉 -4.2% YoY"},
		{models.Trend{ChangePct: 0, Direction: models.TrendFlat}, "➡️ +0.0% YoY"},
	}
	for _, c := range cases {
		if got := FormatTrend(c.trend); got != c.want {
			t.Fatalf("FormatTrend(%+v) = %q, want %q", c.trend, got, c.want)
		}
	}
}

func TestWebReport(t *testing.T) {
	out := Web(WebInput{
		Ticker:  "CAKE",
		Company: "Cheesecake Factory",
		Now:     reportNow,
		Articles: []models.NewsArticle{
			{Headline: "Earnings beat", Source: "Newswire", Unix: reportNow.Unix()},
		},
		Filings: []models.Filing{
			{Form: "10-Q", FilingDate: "2025-05-07", ReportDate: "2025-04-01"},
		},
	})

	if !strings.Contains(out, "## Recent News (1 articles)") {
		t.Fatalf("missing news section:\n%s", out)
	}
	if !strings.Contains(out, "## Recent SEC Filings (1)") {
		t.Fatalf("missing filings section:\n%s", out)
	}
	if !strings.Contains(out, "| 10-Q | 2025-05-07 | 2025-04-01 | — |") {
		t.Fatalf("missing filing row:\n%s", out)
	}
}

func TestWebReportEmpty(t *testing.T) {
	out := Web(WebInput{Ticker: "CAKE", Company: "Cheesecake Factory", Now: reportNow})
	if !strings.Contains(out, "*No recent news or filings found for this ticker.*") {
		t.Fatalf("missing empty fallback:\n%s", out)
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	if got := truncate("café", 10); got != "café" {
		t.Fatalf("short strings must pass through, got %q", got)
	}
	got := truncate(strings.Repeat("é", 20), 5)
	if got != strings.Repeat("é", 5)+"..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
}
