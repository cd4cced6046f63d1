package models

import "time"

// FilingType is a regulatory form identifier (10-K, 10-Q, amendments).
type FilingType string

const (
	FilingAnnual           FilingType = "10-K"
	FilingQuarterly        FilingType = "10-Q"
	FilingAnnualAmended    FilingType = "10-K/A"
	FilingQuarterlyAmended FilingType = "10-Q/A"
)

// Base strips the amendment suffix, so 10-K/A and 10-K compare equal when
// deduplicating periods.
func (f FilingType) Base() FilingType {
	if len(f) > 2 && f[len(f)-2:] == "/A" {
		return f[:len(f)-2]
	}
	return f
}

// IsRegulatory reports whether the form participates in metric extraction.
func (f FilingType) IsRegulatory() bool {
	switch f {
	case FilingAnnual, FilingQuarterly, FilingAnnualAmended, FilingQuarterlyAmended:
		return true
	}
	return false
}

// Observation is one reported value of a metric for a fiscal period. Value is
// optional: absence means "not reported", which is distinct from zero.
type Observation struct {
	Value        *float64   `json:"value"`
	PeriodEnd    time.Time  `json:"period_end"`
	Filing       FilingType `json:"filing"`
	FiledDate    string     `json:"filed,omitempty"`
	FiscalYear   *int       `json:"fiscal_year,omitempty"`
	FiscalPeriod string     `json:"fiscal_period,omitempty"`
}

// MetricSeries is a chronologically ascending, period-deduplicated run of
// observations for one metric.
type MetricSeries []Observation

// Latest returns the most recent observation matching the given filing base
// type, or the most recent of any type when base is empty. ok is false for an
// empty series or no match.
func (s MetricSeries) Latest(base FilingType) (Observation, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if base == "" || s[i].Filing.Base() == base {
			return s[i], true
		}
	}
	return Observation{}, false
}

// LatestValue prefers the latest annual value and falls back to the latest
// value of any filing type. Returns nil when the series carries no value.
func (s MetricSeries) LatestValue() *float64 {
	if o, ok := s.Latest(FilingAnnual); ok && o.Value != nil {
		return o.Value
	}
	if o, ok := s.Latest(""); ok {
		return o.Value
	}
	return nil
}

// Annual returns the subseries of annual (10-K base) observations, order
// preserved.
func (s MetricSeries) Annual() MetricSeries {
	var out MetricSeries
	for _, o := range s {
		if o.Filing.Base() == FilingAnnual {
			out = append(out, o)
		}
	}
	return out
}

// MetricsDocument is the normalized output of fact extraction: one map of
// metric name to series per statement category. Only metrics that produced a
// non-empty series are present.
type MetricsDocument struct {
	Income       map[string]MetricSeries `json:"income_statement"`
	BalanceSheet map[string]MetricSeries `json:"balance_sheet"`
	CashFlow     map[string]MetricSeries `json:"cash_flow"`
}

// NewMetricsDocument returns an empty document with all categories allocated.
func NewMetricsDocument() *MetricsDocument {
	return &MetricsDocument{
		Income:       make(map[string]MetricSeries),
		BalanceSheet: make(map[string]MetricSeries),
		CashFlow:     make(map[string]MetricSeries),
	}
}

// MetricCount is the number of metric names present across all categories.
func (d *MetricsDocument) MetricCount() int {
	if d == nil {
		return 0
	}
	return len(d.Income) + len(d.BalanceSheet) + len(d.CashFlow)
}

// Series looks a metric up across categories.
func (d *MetricsDocument) Series(name string) (MetricSeries, bool) {
	if d == nil {
		return nil, false
	}
	for _, m := range []map[string]MetricSeries{d.Income, d.BalanceSheet, d.CashFlow} {
		if s, ok := m[name]; ok {
			return s, true
		}
	}
	return nil, false
}

// Value is shorthand for the latest preferred value of a named metric.
func (d *MetricsDocument) Value(name string) *float64 {
	s, ok := d.Series(name)
	if !ok {
		return nil
	}
	return s.LatestValue()
}
