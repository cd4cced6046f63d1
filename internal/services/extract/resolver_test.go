package extract

import (
	"testing"

	"FinGather/internal/domain/models"
)

func entry(val float64, end, form string) models.FactEntry {
	return models.FactEntry{Val: &val, End: end, Form: form}
}

func TestResolveFallsBackToNextAlias(t *testing.T) {
	gaap := models.ConceptMap{
		"Revenues": {Units: map[string][]models.FactEntry{
			"USD": {},
		}},
		"RevenueFromContractWithCustomerExcludingAssessedTax": {Units: map[string][]models.FactEntry{
			"USD": {entry(100, "2024-12-31", "10-K")},
		}},
	}

	entries, ok := Resolve(gaap, []string{"Revenues", "RevenueFromContractWithCustomerExcludingAssessedTax"})
	if !ok {
		t.Fatalf("expected a resolution")
	}
	if len(entries) != 1 || *entries[0].Val != 100 {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestResolveUnitPriority(t *testing.T) {
	gaap := models.ConceptMap{
		"EarningsPerShareBasic": {Units: map[string][]models.FactEntry{
			"pure":       {entry(1, "2024-12-31", "10-K")},
			"USD/shares": {entry(2.5, "2024-12-31", "10-K")},
		}},
	}

	entries, ok := Resolve(gaap, []string{"EarningsPerShareBasic"})
	if !ok {
		t.Fatalf("expected a resolution")
	}
	if *entries[0].Val != 2.5 {
		t.Fatalf("expected USD/shares entries to win, got %v", *entries[0].Val)
	}
}

func TestResolveSkipsUnknownUnits(t *testing.T) {
	gaap := models.ConceptMap{
		"Revenues": {Units: map[string][]models.FactEntry{
			"EUR": {entry(100, "2024-12-31", "10-K")},
		}},
	}

	if _, ok := Resolve(gaap, []string{"Revenues"}); ok {
		t.Fatalf("expected no resolution for non-preferred units")
	}
}

func TestResolveMissingConcept(t *testing.T) {
	if _, ok := Resolve(models.ConceptMap{}, []string{"Revenues"}); ok {
		t.Fatalf("expected no resolution")
	}
	if _, ok := Resolve(nil, []string{"Revenues"}); ok {
		t.Fatalf("expected no resolution on nil map")
	}
}
