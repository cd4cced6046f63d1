package models

// CompanySnapshot is supplementary market data merged into the fundamentals
// report. Optional upstream fields stay optional here: conversion from the
// provider's raw JSON happens once, at the ingestion boundary.
type CompanySnapshot struct {
	Name        string `json:"name,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Exchange    string `json:"exchange,omitempty"`
	WebURL      string `json:"web_url,omitempty"`
	Description string `json:"description,omitempty"`

	MarketCap     *float64 `json:"market_cap,omitempty"`
	PETrailing    *float64 `json:"pe_trailing,omitempty"`
	PriceToBook   *float64 `json:"price_to_book,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	Beta          *float64 `json:"beta,omitempty"`
	High52W       *float64 `json:"high_52w,omitempty"`
	Low52W        *float64 `json:"low_52w,omitempty"`

	Recommendations []AnalystRecommendation `json:"recommendations,omitempty"`
	Earnings        []EarningsRecord        `json:"earnings,omitempty"`
}

// Empty reports whether nothing supplementary was gathered.
func (s *CompanySnapshot) Empty() bool {
	return s == nil || (s.Name == "" && s.MarketCap == nil &&
		len(s.Recommendations) == 0 && len(s.Earnings) == 0)
}

// AnalystRecommendation is one period of analyst rating counts.
type AnalystRecommendation struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

// EarningsRecord is one quarterly EPS estimate/actual pair.
type EarningsRecord struct {
	Period   string   `json:"period"`
	Year     int      `json:"year"`
	Quarter  int      `json:"quarter"`
	Estimate *float64 `json:"estimate"`
	Actual   *float64 `json:"actual"`
	Surprise *float64 `json:"surprisePercent"`
}

// NewsArticle is one company news item.
type NewsArticle struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Unix     int64  `json:"datetime"`
}

// SocialPost is one social media mention.
type SocialPost struct {
	Title     string `json:"title"`
	Subreddit string `json:"subreddit"`
	Author    string `json:"author"`
	Score     int    `json:"score"`
	Comments  int    `json:"num_comments"`
	Permalink string `json:"permalink"`
	Unix      int64  `json:"created_utc"`
}
