package report

import (
	"fmt"
	"strings"
	"time"

	"FinGather/internal/domain/models"
)

// SocialInput is everything the social sentiment report needs.
type SocialInput struct {
	Ticker    string
	Company   string
	Theme     string
	Directive string
	Now       time.Time

	Posts []models.SocialPost
}

// Social renders recent social mentions.
func Social(in SocialInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Social Sentiment Report: $%s (%s)\n", in.Ticker, in.Company)
	fmt.Fprintf(&b, "*Generated: %s*\n", in.Now.UTC().Format(time.RFC3339))
	if in.Theme != "" {
		fmt.Fprintf(&b, "*Theme: %s*\n", in.Theme)
	}
	if in.Directive != "" {
		fmt.Fprintf(&b, "*Directive: %s*\n", in.Directive)
	}
	b.WriteString("\n---\n\n")

	if len(in.Posts) == 0 {
		b.WriteString("*No recent social mentions found for this ticker.*\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Reddit Mentions (%d posts)\n\n", len(in.Posts))
	for _, p := range in.Posts {
		date := time.Unix(p.Unix, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(&b, "- **%s** — r/%s (score %d, %d comments, %s)\n",
			truncate(p.Title, 200), p.Subreddit, p.Score, p.Comments, date)
		if p.Permalink != "" {
			fmt.Fprintf(&b, "  %s\n", p.Permalink)
		}
	}
	b.WriteString("\n")

	return b.String()
}
