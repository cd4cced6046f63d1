package extract

import (
	"testing"

	"FinGather/internal/domain/models"
)

func TestBuildMetricsDocumentNilFacts(t *testing.T) {
	doc := BuildMetricsDocument(nil, 5, testNow)
	if doc == nil {
		t.Fatalf("expected an empty document, got nil")
	}
	if doc.MetricCount() != 0 {
		t.Fatalf("expected no metrics, got %d", doc.MetricCount())
	}
}

func TestBuildMetricsDocument(t *testing.T) {
	facts := &models.CompanyFacts{
		Facts: map[string]models.ConceptMap{
			"us-gaap": {
				"Revenues": {Units: map[string][]models.FactEntry{
					"USD": {
						entry(100, "2023-12-31", "10-K"),
						entry(120, "2024-12-31", "10-K"),
					},
				}},
				"NetIncomeLoss": {Units: map[string][]models.FactEntry{
					"USD": {entry(15, "2024-12-31", "10-K")},
				}},
				"Assets": {Units: map[string][]models.FactEntry{
					"USD": {entry(900, "2024-12-31", "10-K")},
				}},
				// entirely filtered out: too old
				"NetCashProvidedByUsedInOperatingActivities": {Units: map[string][]models.FactEntry{
					"USD": {entry(40, "2012-12-31", "10-K")},
				}},
			},
		},
	}

	doc := BuildMetricsDocument(facts, 5, testNow)
	if doc.MetricCount() != 3 {
		t.Fatalf("expected 3 metrics, got %d", doc.MetricCount())
	}
	if _, ok := doc.Income["revenue"]; !ok {
		t.Fatalf("expected revenue in income statement")
	}
	if _, ok := doc.BalanceSheet["total_assets"]; !ok {
		t.Fatalf("expected total_assets in balance sheet")
	}
	if _, ok := doc.CashFlow["operating_cash_flow"]; ok {
		t.Fatalf("filtered series must not appear")
	}
	if v := doc.Value("revenue"); v == nil || *v != 120 {
		t.Fatalf("unexpected latest revenue %v", v)
	}
}

func TestBuildMetricsDocumentOperatingCashFlowAliases(t *testing.T) {
	// Some filers tag cash flow under the shorter concept name; it must
	// resolve the same as the NetCashProvidedByUsedIn* variants.
	facts := &models.CompanyFacts{
		Facts: map[string]models.ConceptMap{
			"us-gaap": {
				"NetCashProvidedByOperatingActivities": {Units: map[string][]models.FactEntry{
					"USD": {entry(250, "2024-12-31", "10-K")},
				}},
			},
		},
	}

	doc := BuildMetricsDocument(facts, 5, testNow)
	series, ok := doc.CashFlow["operating_cash_flow"]
	if !ok {
		t.Fatalf("expected operating_cash_flow in cash flow statement")
	}
	if len(series) != 1 || series[0].Value == nil || *series[0].Value != 250 {
		t.Fatalf("unexpected series %+v", series)
	}
}
