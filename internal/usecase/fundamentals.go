package usecase

import (
	"context"
	"errors"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/internal/services/extract"
	"FinGather/internal/services/report"
	"FinGather/pkg/logger"
)

// FundamentalsSource gathers SEC XBRL financials supplemented with market
// data and renders them into a research document. Identifier resolution and
// fact fetching degrade to an empty metrics document; the report is produced
// regardless so downstream staging always has content to consider.
type FundamentalsSource struct {
	resolver      repository.IdentifierResolver
	facts         repository.FactsProvider
	snapshots     repository.SnapshotProvider
	lookbackYears int
	log           *logger.Logger
	now           func() time.Time
}

// NewFundamentalsSource creates the fundamentals handler.
func NewFundamentalsSource(
	resolver repository.IdentifierResolver,
	facts repository.FactsProvider,
	snapshots repository.SnapshotProvider,
	lookbackYears int,
	log *logger.Logger,
) *FundamentalsSource {
	return &FundamentalsSource{
		resolver:      resolver,
		facts:         facts,
		snapshots:     snapshots,
		lookbackYears: lookbackYears,
		log:           log,
		now:           time.Now,
	}
}

// Gather implements SourceHandler with the configured lookback.
func (s *FundamentalsSource) Gather(ctx context.Context, req SourceRequest) (models.SourcePayload, error) {
	return s.GatherYears(ctx, req, s.lookbackYears)
}

// GatherYears gathers with an explicit lookback window in years.
func (s *FundamentalsSource) GatherYears(ctx context.Context, req SourceRequest, years int) (models.SourcePayload, error) {
	if years <= 0 {
		years = s.lookbackYears
	}
	now := s.now()

	cik, err := s.resolver.ResolveCIK(ctx, req.Ticker)
	if err != nil {
		if errors.Is(err, repository.ErrTickerNotFound) {
			s.log.Warn("cik not found", logger.String("ticker", req.Ticker))
		} else {
			s.log.Warn("cik resolution failed", logger.String("ticker", req.Ticker), logger.Error(err))
		}
		cik = ""
	}

	doc := models.NewMetricsDocument()
	if cik != "" {
		facts, err := s.facts.CompanyFacts(ctx, cik)
		if err != nil {
			s.log.Warn("company facts unavailable",
				logger.String("ticker", req.Ticker),
				logger.String("cik", cik),
				logger.Error(err))
		} else {
			doc = extract.BuildMetricsDocument(facts, years, now)
		}
	}
	derived := extract.Derive(doc)

	snapshot, err := s.snapshots.Snapshot(ctx, req.Ticker)
	if err != nil {
		s.log.Warn("snapshot unavailable", logger.String("ticker", req.Ticker), logger.Error(err))
		snapshot = &models.CompanySnapshot{}
	}

	markdown := report.Fundamentals(report.FundamentalsInput{
		Ticker:    req.Ticker,
		Company:   req.Company,
		CIK:       cik,
		Theme:     req.Theme,
		Directive: req.Directive,
		Now:       now,
		Metrics:   doc,
		Derived:   derived,
		Snapshot:  snapshot,
	})

	return &models.FundamentalsPayload{
		Report:   markdown,
		CIK:      cik,
		Metrics:  doc,
		Derived:  derived,
		Snapshot: snapshot,
	}, nil
}
