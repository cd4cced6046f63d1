// Package edgar fetches company identifiers and XBRL disclosures from the
// SEC EDGAR public APIs.
package edgar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/internal/service/cache"
	"FinGather/internal/service/ratelimit"
	xhttp "FinGather/pkg/http"
	"FinGather/pkg/logger"
)

const (
	tickersURL        = "https://www.sec.gov/files/company_tickers.json"
	companyFactsURL   = "https://data.sec.gov/api/xbrl/companyfacts/CIK%s.json"
	submissionsURL    = "https://data.sec.gov/submissions/CIK%s.json"
	defaultRatePerSec = 5.0 // SEC fair-access guidance is 10 req/s; stay well under
)

// Client talks to SEC EDGAR. A User-Agent with contact info is mandatory per
// SEC fair-access policy; requests are paced through a shared token bucket.
type Client struct {
	http      *xhttp.Client
	userAgent string
	limiter   *ratelimit.Limiter
	cikCache  *cache.CIKCache
	log       *logger.Logger
}

// NewClient creates an EDGAR client.
func NewClient(httpClient *xhttp.Client, userAgent string, limiter *ratelimit.Limiter, cikCache *cache.CIKCache, log *logger.Logger) *Client {
	return &Client{
		http:      httpClient,
		userAgent: userAgent,
		limiter:   limiter,
		cikCache:  cikCache,
		log:       log,
	}
}

type tickerEntry struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// ResolveCIK maps a ticker to its zero-padded 10-digit CIK. The full SEC
// mapping is cached on first fetch so subsequent lookups skip the network.
func (c *Client) ResolveCIK(ctx context.Context, ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimPrefix(ticker, "$"))

	if cik, ok := c.cikCache.Get(ctx, ticker); ok {
		return cik, nil
	}

	var entries map[string]tickerEntry
	if err := c.get(ctx, tickersURL, &entries); err != nil {
		return "", fmt.Errorf("fetch ticker mapping: %w", err)
	}

	mapping := make(map[string]string, len(entries))
	var resolved string
	for _, e := range entries {
		cik := fmt.Sprintf("%010d", e.CIK)
		sym := strings.ToUpper(e.Ticker)
		mapping[sym] = cik
		if sym == ticker {
			resolved = cik
		}
	}
	if err := c.cikCache.SetAll(ctx, mapping); err != nil {
		c.log.Warn("cik cache fill failed", logger.Error(err))
	}

	if resolved == "" {
		return "", repository.ErrTickerNotFound
	}
	return resolved, nil
}

// CompanyFacts fetches the full XBRL fact set for a CIK.
func (c *Client) CompanyFacts(ctx context.Context, cik string) (*models.CompanyFacts, error) {
	var facts models.CompanyFacts
	if err := c.get(ctx, fmt.Sprintf(companyFactsURL, cik), &facts); err != nil {
		return nil, fmt.Errorf("fetch company facts cik=%s: %w", cik, err)
	}
	return &facts, nil
}

type submissionsPayload struct {
	Filings struct {
		Recent struct {
			Form                  []string `json:"form"`
			FilingDate            []string `json:"filingDate"`
			ReportDate            []string `json:"reportDate"`
			AccessionNumber       []string `json:"accessionNumber"`
			PrimaryDocDescription []string `json:"primaryDocDescription"`
		} `json:"recent"`
	} `json:"filings"`
}

// RecentFilings lists the most recent filings for a CIK, optionally filtered
// to the given form types, newest first.
func (c *Client) RecentFilings(ctx context.Context, cik string, forms []string, limit int) ([]models.Filing, error) {
	var payload submissionsPayload
	if err := c.get(ctx, fmt.Sprintf(submissionsURL, cik), &payload); err != nil {
		return nil, fmt.Errorf("fetch submissions cik=%s: %w", cik, err)
	}

	wanted := make(map[string]bool, len(forms))
	for _, f := range forms {
		wanted[f] = true
	}

	recent := payload.Filings.Recent
	filings := make([]models.Filing, 0, limit)
	for i := range recent.Form {
		if len(forms) > 0 && !wanted[recent.Form[i]] {
			continue
		}
		f := models.Filing{Form: recent.Form[i]}
		if i < len(recent.FilingDate) {
			f.FilingDate = recent.FilingDate[i]
		}
		if i < len(recent.ReportDate) {
			f.ReportDate = recent.ReportDate[i]
		}
		if i < len(recent.AccessionNumber) {
			f.Accession = recent.AccessionNumber[i]
		}
		if i < len(recent.PrimaryDocDescription) {
			f.Description = recent.PrimaryDocDescription[i]
		}
		filings = append(filings, f)
		if limit > 0 && len(filings) >= limit {
			break
		}
	}
	return filings, nil
}

func (c *Client) get(ctx context.Context, url string, dest interface{}) error {
	if err := c.limiter.Wait(ctx, "sec", defaultRatePerSec, defaultRatePerSec); err != nil {
		return err
	}
	started := time.Now()
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    url,
		Headers: map[string]string{
			"User-Agent": c.userAgent,
			"Accept":     "application/json",
		},
	}, dest)
	c.log.Debug("edgar request",
		logger.String("url", url),
		logger.Duration("took", time.Since(started)),
		logger.Bool("ok", err == nil))
	return err
}
