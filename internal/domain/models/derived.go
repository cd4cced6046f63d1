package models

// TrendDirection classifies a year-over-year change.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// Trend is the percent change between the two most recent annual observations
// of a metric. It exists only when both observations exist and the earlier
// value is non-zero.
type Trend struct {
	ChangePct float64        `json:"change_pct"`
	Direction TrendDirection `json:"direction"`
}

// DerivedFigures carries everything computed from a MetricsDocument rather
// than reported directly. All pointer fields are nil when the inputs needed
// to derive them are absent.
type DerivedFigures struct {
	Trends map[string]Trend `json:"trends,omitempty"`

	GrossMargin     *float64 `json:"gross_margin,omitempty"`
	OperatingMargin *float64 `json:"operating_margin,omitempty"`
	NetMargin       *float64 `json:"net_margin,omitempty"`

	DebtToEquity *float64 `json:"debt_to_equity,omitempty"`
	CurrentRatio *float64 `json:"current_ratio,omitempty"`
	NetDebt      *float64 `json:"net_debt,omitempty"`

	FreeCashFlow *float64 `json:"free_cash_flow,omitempty"`
}
