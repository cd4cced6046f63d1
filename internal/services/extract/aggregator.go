package extract

import (
	"time"

	"FinGather/internal/domain/models"
)

// BuildMetricsDocument extracts every known metric from company facts. Only
// metrics whose extraction yields a non-empty series appear; nil facts
// produce an empty document.
func BuildMetricsDocument(facts *models.CompanyFacts, lookbackYears int, now time.Time) *models.MetricsDocument {
	doc := models.NewMetricsDocument()
	gaap := facts.GAAP()
	if gaap == nil {
		return doc
	}
	fill(doc.Income, gaap, incomeConcepts, lookbackYears, now)
	fill(doc.BalanceSheet, gaap, balanceSheetConcepts, lookbackYears, now)
	fill(doc.CashFlow, gaap, cashFlowConcepts, lookbackYears, now)
	return doc
}

func fill(dst map[string]models.MetricSeries, gaap models.ConceptMap, concepts map[string][]string, lookbackYears int, now time.Time) {
	for metric, aliases := range concepts {
		entries, ok := Resolve(gaap, aliases)
		if !ok {
			continue
		}
		if series := Observations(entries, lookbackYears, now); len(series) > 0 {
			dst[metric] = series
		}
	}
}
