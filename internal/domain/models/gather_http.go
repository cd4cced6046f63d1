package models

// Requests for gather HTTP endpoints. Defined in domain for consistency and reuse.

type GatherRequest struct {
	Ticker    string   `json:"ticker" validate:"required,max=10"`
	Company   string   `json:"company"`
	Agent     string   `json:"agent" validate:"required,max=32"`
	Sources   []string `json:"sources" validate:"omitempty,dive,oneof=web fundamentals social technicals"`
	Theme     string   `json:"theme"`
	Directive string   `json:"directive"`
	DryRun    bool     `json:"dry_run"`
}

type FundamentalsRequest struct {
	Ticker  string `query:"ticker" json:"ticker" validate:"required,max=10"`
	Company string `query:"company" json:"company"`
	Years   int    `query:"years" json:"years" default:"5" validate:"gte=1,lte=20"`
}

// FundamentalsResponse is the API projection of a fundamentals gather.
type FundamentalsResponse struct {
	Ticker      string           `json:"ticker"`
	CIK         string           `json:"cik,omitempty"`
	MetricCount int              `json:"metric_count"`
	Metrics     *MetricsDocument `json:"metrics"`
	Derived     *DerivedFigures  `json:"derived"`
	Markdown    string           `json:"markdown"`
}
