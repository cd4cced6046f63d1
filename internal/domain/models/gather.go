package models

import "time"

// Source identifies one gatherable research source.
type Source string

const (
	SourceWeb          Source = "web"
	SourceFundamentals Source = "fundamentals"
	SourceSocial       Source = "social"
	SourceTechnicals   Source = "technicals"
)

// GatherResult is the outcome of running one source handler.
type GatherResult struct {
	Source      Source `json:"source"`
	Success     bool   `json:"success"`
	MetricCount int    `json:"metric_count"`
	Content     string `json:"-"`
	Error       string `json:"error,omitempty"`
}

// StoreResult is the outcome of staging one gathered document.
type StoreResult struct {
	Source  Source `json:"source"`
	Success bool   `json:"success"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

// ReindexResult is the outcome of the single conditional reindex trigger.
type ReindexResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GatherReport is the full record of one gather run.
type GatherReport struct {
	Ticker    string    `json:"ticker"`
	Company   string    `json:"company,omitempty"`
	Agent     string    `json:"agent"`
	Timestamp time.Time `json:"timestamp"`
	DryRun    bool      `json:"dry_run,omitempty"`

	Sources       []Source       `json:"sources"`
	GatherResults []GatherResult `json:"gather_results"`
	StoreResults  []StoreResult  `json:"store_results"`
	Reindex       ReindexResult  `json:"reindex"`

	Summary string `json:"summary"`
	Success bool   `json:"success"`
}

// ResearchDocument is one staged markdown document.
type ResearchDocument struct {
	Key        string    `json:"key"`
	Ticker     string    `json:"ticker"`
	Source     Source    `json:"source"`
	GatheredAt time.Time `json:"gathered_at"`
	Content    string    `json:"content"`
}

// ReindexEvent is published when stored documents require a search reindex.
type ReindexEvent struct {
	Ticker      string    `json:"ticker"`
	Documents   []string  `json:"documents"`
	RequestedAt time.Time `json:"requested_at"`
}
