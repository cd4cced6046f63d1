package report

import (
	"fmt"
	"strings"
	"time"
)

// Signal is one computed technical indicator reading.
type Signal struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Reading string `json:"reading,omitempty"`
}

// TechnicalsInput is everything the technicals report needs.
type TechnicalsInput struct {
	Ticker    string
	Company   string
	Theme     string
	Directive string
	Now       time.Time

	LastClose float64
	BarCount  int
	From      time.Time
	To        time.Time
	Signals   []Signal
}

// Technicals renders computed price signals.
func Technicals(in TechnicalsInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Technical Analysis Report: $%s (%s)\n", in.Ticker, in.Company)
	fmt.Fprintf(&b, "*Generated: %s*\n", in.Now.UTC().Format(time.RFC3339))
	if in.Theme != "" {
		fmt.Fprintf(&b, "*Theme: %s*\n", in.Theme)
	}
	if in.Directive != "" {
		fmt.Fprintf(&b, "*Directive: %s*\n", in.Directive)
	}
	b.WriteString("\n---\n\n")

	if len(in.Signals) == 0 {
		b.WriteString("*No price history available for this ticker.*\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Price Signals (%d daily bars, %s — %s)\n\n",
		in.BarCount, in.From.Format("2006-01-02"), in.To.Format("2006-01-02"))
	fmt.Fprintf(&b, "- **Last Close**: $%.2f\n", in.LastClose)
	for _, s := range in.Signals {
		line := fmt.Sprintf("- **%s**: %s", s.Name, s.Value)
		if s.Reading != "" {
			line += fmt.Sprintf(" (%s)", s.Reading)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	return b.String()
}
