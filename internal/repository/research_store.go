package repository

import (
	"context"
	"database/sql"
	"fmt"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
)

// ClickHouseResearchStore stages research documents in ClickHouse. The key is
// also the primary lookup handle downstream indexers use.
type ClickHouseResearchStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseResearchStore creates the ClickHouse staging sink.
func NewClickHouseResearchStore(db *sql.DB, table string) repository.StorageSink {
	return &ClickHouseResearchStore{db: db, table: table}
}

func (s *ClickHouseResearchStore) Store(ctx context.Context, doc models.ResearchDocument) (string, error) {
	q := fmt.Sprintf(
		"INSERT INTO %s (key, ticker, source, gathered_at, content) VALUES (?, ?, ?, ?, ?)",
		s.table)
	_, err := s.db.ExecContext(ctx, q,
		doc.Key,
		doc.Ticker,
		string(doc.Source),
		doc.GatheredAt,
		doc.Content,
	)
	if err != nil {
		return "", fmt.Errorf("insert research document: %w", err)
	}
	return doc.Key, nil
}

func (s *ClickHouseResearchStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
