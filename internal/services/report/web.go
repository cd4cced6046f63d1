package report

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"FinGather/internal/domain/models"
)

// WebInput is everything the web research report needs.
type WebInput struct {
	Ticker    string
	Company   string
	Theme     string
	Directive string
	Now       time.Time

	Articles []models.NewsArticle
	Filings  []models.Filing
}

// Web renders recent news and regulatory filings.
func Web(in WebInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Web Research Report: $%s (%s)\n", in.Ticker, in.Company)
	fmt.Fprintf(&b, "*Generated: %s*\n", in.Now.UTC().Format(time.RFC3339))
	if in.Theme != "" {
		fmt.Fprintf(&b, "*Theme: %s*\n", in.Theme)
	}
	if in.Directive != "" {
		fmt.Fprintf(&b, "*Directive: %s*\n", in.Directive)
	}
	b.WriteString("\n---\n\n")

	if len(in.Articles) > 0 {
		fmt.Fprintf(&b, "## Recent News (%d articles)\n\n", len(in.Articles))
		for _, a := range in.Articles {
			date := time.Unix(a.Unix, 0).UTC().Format("2006-01-02")
			fmt.Fprintf(&b, "- **%s** — %s (%s)\n", a.Headline, a.Source, date)
			if a.Summary != "" {
				fmt.Fprintf(&b, "  > %s\n", truncate(a.Summary, 300))
			}
			if a.URL != "" {
				fmt.Fprintf(&b, "  %s\n", a.URL)
			}
		}
		b.WriteString("\n")
	}

	if len(in.Filings) > 0 {
		fmt.Fprintf(&b, "## Recent SEC Filings (%d)\n\n", len(in.Filings))
		b.WriteString("| Form | Filed | Report Date | Description |\n")
		b.WriteString("|------|-------|-------------|-------------|\n")
		for _, f := range in.Filings {
			desc := f.Description
			if desc == "" {
				desc = "—"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", f.Form, f.FilingDate, f.ReportDate, desc)
		}
		b.WriteString("\n")
	}

	if len(in.Articles) == 0 && len(in.Filings) == 0 {
		b.WriteString("*No recent news or filings found for this ticker.*\n")
	}

	return b.String()
}

// truncate shortens s to n characters, never splitting a multi-byte rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
