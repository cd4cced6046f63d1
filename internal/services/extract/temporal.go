package extract

import (
	"sort"
	"time"

	"FinGather/internal/domain/models"
)

type dedupKey struct {
	end  time.Time
	form models.FilingType
}

// Observations turns raw fact entries into a clean chronological series:
// regulatory forms only, parseable period ends, within the lookback window,
// sorted ascending by period end, one observation per (period end, base form)
// with later entries overriding earlier ones so amendments replace originals.
// An empty result is valid and never an error.
func Observations(entries []models.FactEntry, lookbackYears int, now time.Time) models.MetricSeries {
	cutoffYear := now.Year() - lookbackYears

	obs := make(models.MetricSeries, 0, len(entries))
	for _, e := range entries {
		form := models.FilingType(e.Form)
		if !form.IsRegulatory() {
			continue
		}
		end, err := time.Parse("2006-01-02", e.End)
		if err != nil {
			continue
		}
		if end.Year() < cutoffYear {
			continue
		}
		obs = append(obs, models.Observation{
			Value:        e.Val,
			PeriodEnd:    end,
			Filing:       form,
			FiledDate:    e.Filed,
			FiscalYear:   e.FY,
			FiscalPeriod: e.FP,
		})
	}

	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].PeriodEnd.Before(obs[j].PeriodEnd)
	})

	// Last-seen wins per key: an amendment filed after the original lands
	// later in the input and replaces it in place.
	index := make(map[dedupKey]int, len(obs))
	deduped := obs[:0]
	for _, o := range obs {
		k := dedupKey{end: o.PeriodEnd, form: o.Filing.Base()}
		if i, seen := index[k]; seen {
			deduped[i] = o
			continue
		}
		index[k] = len(deduped)
		deduped = append(deduped, o)
	}
	if len(deduped) == 0 {
		return nil
	}
	return deduped
}
