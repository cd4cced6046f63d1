package usecase

import (
	"context"
	"errors"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/internal/services/report"
	"FinGather/pkg/logger"
)

const (
	newsWindow   = 7 * 24 * time.Hour
	newsLimit    = 10
	filingsLimit = 5
)

var filingForms = []string{"10-K", "10-Q", "10-K/A", "10-Q/A", "8-K", "DEF 14A"}

// WebSource gathers recent company news and SEC filings. News and filings
// degrade independently: a run succeeds as long as one side was attempted,
// even when both come back empty.
type WebSource struct {
	news     repository.NewsProvider
	resolver repository.IdentifierResolver
	facts    repository.FactsProvider
	log      *logger.Logger
	now      func() time.Time
}

// NewWebSource creates the web handler.
func NewWebSource(news repository.NewsProvider, resolver repository.IdentifierResolver, facts repository.FactsProvider, log *logger.Logger) *WebSource {
	return &WebSource{news: news, resolver: resolver, facts: facts, log: log, now: time.Now}
}

// Gather implements SourceHandler.
func (s *WebSource) Gather(ctx context.Context, req SourceRequest) (models.SourcePayload, error) {
	now := s.now()

	articles, err := s.news.CompanyNews(ctx, req.Ticker, now.Add(-newsWindow), now, newsLimit)
	if err != nil {
		s.log.Warn("company news unavailable", logger.String("ticker", req.Ticker), logger.Error(err))
		articles = nil
	}

	var filings []models.Filing
	cik, err := s.resolver.ResolveCIK(ctx, req.Ticker)
	switch {
	case errors.Is(err, repository.ErrTickerNotFound):
		s.log.Warn("cik not found", logger.String("ticker", req.Ticker))
	case err != nil:
		s.log.Warn("cik resolution failed", logger.String("ticker", req.Ticker), logger.Error(err))
	default:
		filings, err = s.facts.RecentFilings(ctx, cik, filingForms, filingsLimit)
		if err != nil {
			s.log.Warn("filings unavailable", logger.String("cik", cik), logger.Error(err))
			filings = nil
		}
	}

	markdown := report.Web(report.WebInput{
		Ticker:    req.Ticker,
		Company:   req.Company,
		Theme:     req.Theme,
		Directive: req.Directive,
		Now:       now,
		Articles:  articles,
		Filings:   filings,
	})

	return &models.WebPayload{
		Report:       markdown,
		ArticleCount: len(articles),
		FilingCount:  len(filings),
	}, nil
}
