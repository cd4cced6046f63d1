package repository

import (
	"context"
	"errors"
	"time"

	"FinGather/internal/domain/models"
)

// ErrTickerNotFound is returned by identifier resolution when the ticker has
// no registered CIK.
var ErrTickerNotFound = errors.New("ticker not found")

// IdentifierResolver maps a ticker symbol to its zero-padded 10-digit CIK.
type IdentifierResolver interface {
	ResolveCIK(ctx context.Context, ticker string) (string, error)
}

// FactsProvider fetches regulatory disclosures for a company.
type FactsProvider interface {
	CompanyFacts(ctx context.Context, cik string) (*models.CompanyFacts, error)
	RecentFilings(ctx context.Context, cik string, forms []string, limit int) ([]models.Filing, error)
}

// SnapshotProvider fetches supplementary market data (profile, multiples,
// analyst activity). Implementations degrade section by section: a partial
// snapshot with a nil error is a valid outcome.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, ticker string) (*models.CompanySnapshot, error)
}

// NewsProvider fetches recent company news.
type NewsProvider interface {
	CompanyNews(ctx context.Context, ticker string, from, to time.Time, limit int) ([]models.NewsArticle, error)
}

// SocialProvider fetches recent social mentions of a ticker.
type SocialProvider interface {
	Search(ctx context.Context, query string, limit int) ([]models.SocialPost, error)
}

// MarketDataProvider fetches daily price history.
type MarketDataProvider interface {
	DailyBars(ctx context.Context, ticker string, from, to time.Time) ([]models.Candle, error)
}

// StorageSink stages gathered research documents. Store returns the
// destination key the document landed under.
type StorageSink interface {
	Store(ctx context.Context, doc models.ResearchDocument) (string, error)
	Health(ctx context.Context) error
}

// ReindexSink triggers a search reindex over staged documents. Trigger
// returns a human-readable outcome message.
type ReindexSink interface {
	Trigger(ctx context.Context, event models.ReindexEvent) (string, error)
}

// Metrics abstracts operational metric recording.
type Metrics interface {
	RecordGather(source string, success bool)
	RecordStore(success bool)
	RecordReindex(success bool)
	RecordSourceCount(source string, count int)
	RecordLatency(operation string, seconds float64)
}
