// Package finnhub provides a REST client for the Finnhub market data API.
package finnhub

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"FinGather/internal/domain/models"
	"FinGather/pkg/logger"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// Client calls Finnhub REST endpoints. All responses are converted to typed
// domain models at this boundary; optional upstream fields stay pointers.
type Client struct {
	rest *resty.Client
	log  *logger.Logger
}

// New creates a Finnhub client. baseURL may be empty for the public API.
func New(apiKey, baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetQueryParam("token", apiKey)
	return &Client{rest: rest, log: log}
}

type profileResponse struct {
	Name                 string   `json:"name"`
	Exchange             string   `json:"exchange"`
	FinnhubIndustry      string   `json:"finnhubIndustry"`
	WebURL               string   `json:"weburl"`
	Description          string   `json:"description"`
	MarketCapitalization *float64 `json:"marketCapitalization"`
}

type metricsResponse struct {
	Metric map[string]*float64 `json:"metric"`
}

type newsItem struct {
	Category string `json:"category"`
	DateTime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

type earningsItem struct {
	Period   string   `json:"period"`
	Year     int      `json:"year"`
	Quarter  int      `json:"quarter"`
	Estimate *float64 `json:"estimate"`
	Actual   *float64 `json:"actual"`
	Surprise *float64 `json:"surprisePercent"`
}

// Snapshot assembles the supplementary company snapshot. Each section
// degrades independently: an upstream failure logs a warning and leaves the
// section empty rather than failing the whole snapshot.
func (c *Client) Snapshot(ctx context.Context, ticker string) (*models.CompanySnapshot, error) {
	snap := &models.CompanySnapshot{}

	var profile profileResponse
	if err := c.get(ctx, "/stock/profile2", map[string]string{"symbol": ticker}, &profile); err != nil {
		c.log.Warn("finnhub profile unavailable", logger.String("ticker", ticker), logger.Error(err))
	} else {
		snap.Name = profile.Name
		snap.Industry = profile.FinnhubIndustry
		snap.Exchange = profile.Exchange
		snap.WebURL = profile.WebURL
		snap.Description = profile.Description
		if profile.MarketCapitalization != nil {
			// Finnhub reports market cap in millions.
			mc := *profile.MarketCapitalization * 1e6
			snap.MarketCap = &mc
		}
	}

	var metrics metricsResponse
	if err := c.get(ctx, "/stock/metric", map[string]string{"symbol": ticker, "metric": "all"}, &metrics); err != nil {
		c.log.Warn("finnhub metrics unavailable", logger.String("ticker", ticker), logger.Error(err))
	} else if metrics.Metric != nil {
		snap.PETrailing = metrics.Metric["peTTM"]
		snap.PriceToBook = metrics.Metric["pb"]
		snap.Beta = metrics.Metric["beta"]
		snap.High52W = metrics.Metric["52WeekHigh"]
		snap.Low52W = metrics.Metric["52WeekLow"]
		snap.DividendYield = metrics.Metric["currentDividendYieldTTM"]
	}

	var recs []models.AnalystRecommendation
	if err := c.get(ctx, "/stock/recommendation", map[string]string{"symbol": ticker}, &recs); err != nil {
		c.log.Warn("finnhub recommendations unavailable", logger.String("ticker", ticker), logger.Error(err))
	} else {
		if len(recs) > 10 {
			recs = recs[:10]
		}
		snap.Recommendations = recs
	}

	var earnings []earningsItem
	if err := c.get(ctx, "/stock/earnings", map[string]string{"symbol": ticker}, &earnings); err != nil {
		c.log.Warn("finnhub earnings unavailable", logger.String("ticker", ticker), logger.Error(err))
	} else {
		if len(earnings) > 8 {
			earnings = earnings[:8]
		}
		for _, e := range earnings {
			snap.Earnings = append(snap.Earnings, models.EarningsRecord{
				Period:   e.Period,
				Year:     e.Year,
				Quarter:  e.Quarter,
				Estimate: e.Estimate,
				Actual:   e.Actual,
				Surprise: e.Surprise,
			})
		}
	}

	return snap, nil
}

// CompanyNews lists company news within [from, to], newest first, bounded by
// limit.
func (c *Client) CompanyNews(ctx context.Context, ticker string, from, to time.Time, limit int) ([]models.NewsArticle, error) {
	var items []newsItem
	err := c.get(ctx, "/company-news", map[string]string{
		"symbol": ticker,
		"from":   from.Format("2006-01-02"),
		"to":     to.Format("2006-01-02"),
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("company news %s: %w", ticker, err)
	}

	articles := make([]models.NewsArticle, 0, len(items))
	for _, it := range items {
		if it.Headline == "" {
			continue
		}
		articles = append(articles, models.NewsArticle{
			Headline: it.Headline,
			Source:   it.Source,
			Summary:  it.Summary,
			URL:      it.URL,
			Unix:     it.DateTime,
		})
		if limit > 0 && len(articles) >= limit {
			break
		}
	}
	return articles, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, dest interface{}) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(dest).
		Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("finnhub %s: status %d", path, resp.StatusCode())
	}
	return nil
}
