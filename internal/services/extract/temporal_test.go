package extract

import (
	"reflect"
	"testing"
	"time"

	"FinGather/internal/domain/models"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestObservationsFiltersAndSorts(t *testing.T) {
	entries := []models.FactEntry{
		entry(300, "2024-12-31", "10-K"),
		entry(100, "2022-12-31", "10-K"),
		entry(50, "2015-12-31", "10-K"),  // outside lookback
		entry(75, "2023-03-31", "8-K"),   // not a regulatory form
		entry(60, "not-a-date", "10-K"),  // unparseable period end
		entry(200, "2023-12-31", "10-K"),
	}

	obs := Observations(entries, 5, testNow)
	if len(obs) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(obs))
	}
	for i := 1; i < len(obs); i++ {
		if obs[i].PeriodEnd.Before(obs[i-1].PeriodEnd) {
			t.Fatalf("observations not ascending: %v", obs)
		}
	}
	if *obs[0].Value != 100 || *obs[2].Value != 300 {
		t.Fatalf("unexpected order %+v", obs)
	}
}

func TestObservationsAmendmentOverridesOriginal(t *testing.T) {
	entries := []models.FactEntry{
		entry(100, "2023-12-31", "10-K"),
		entry(110, "2023-12-31", "10-K/A"),
	}

	obs := Observations(entries, 5, testNow)
	if len(obs) != 1 {
		t.Fatalf("expected the amendment to replace the original, got %d observations", len(obs))
	}
	if *obs[0].Value != 110 {
		t.Fatalf("expected amended value 110, got %v", *obs[0].Value)
	}
	if obs[0].Filing != models.FilingAnnualAmended {
		t.Fatalf("expected amended filing type, got %s", obs[0].Filing)
	}
}

func TestObservationsKeepsDistinctBaseForms(t *testing.T) {
	entries := []models.FactEntry{
		entry(100, "2023-12-31", "10-K"),
		entry(25, "2023-12-31", "10-Q"),
	}

	obs := Observations(entries, 5, testNow)
	if len(obs) != 2 {
		t.Fatalf("expected both forms kept for the same period, got %d", len(obs))
	}
}

func TestObservationsEmptyIsNil(t *testing.T) {
	if obs := Observations(nil, 5, testNow); obs != nil {
		t.Fatalf("expected nil for no entries, got %v", obs)
	}
	entries := []models.FactEntry{entry(1, "2010-12-31", "10-K")}
	if obs := Observations(entries, 5, testNow); obs != nil {
		t.Fatalf("expected nil when everything is filtered, got %v", obs)
	}
}

func TestObservationsIdempotent(t *testing.T) {
	entries := []models.FactEntry{
		entry(300, "2024-12-31", "10-K"),
		entry(100, "2022-12-31", "10-K"),
		entry(110, "2022-12-31", "10-K/A"),
		entry(25, "2023-09-30", "10-Q"),
		entry(50, "2015-12-31", "10-K"),
	}

	first := Observations(entries, 5, testNow)
	second := Observations(entries, 5, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated extraction diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestObservationsCutoffIsYearBased(t *testing.T) {
	// lookback 5 from 2025 keeps anything ending in 2020 or later
	entries := []models.FactEntry{
		entry(1, "2020-01-02", "10-K"),
		entry(2, "2019-12-31", "10-K"),
	}
	obs := Observations(entries, 5, testNow)
	if len(obs) != 1 || *obs[0].Value != 1 {
		t.Fatalf("expected only the 2020 observation, got %+v", obs)
	}
}
