package usecase

import (
	"context"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/internal/services/report"
	"FinGather/pkg/logger"
)

// SocialSource gathers recent social mentions of a ticker.
type SocialSource struct {
	social repository.SocialProvider
	limit  int
	log    *logger.Logger
	now    func() time.Time
}

// NewSocialSource creates the social handler.
func NewSocialSource(social repository.SocialProvider, limit int, log *logger.Logger) *SocialSource {
	if limit <= 0 {
		limit = 25
	}
	return &SocialSource{social: social, limit: limit, log: log, now: time.Now}
}

// Gather implements SourceHandler. A provider error fails the source; the
// orchestrator isolates it from the rest of the run.
func (s *SocialSource) Gather(ctx context.Context, req SourceRequest) (models.SourcePayload, error) {
	posts, err := s.social.Search(ctx, "$"+req.Ticker, s.limit)
	if err != nil {
		return nil, err
	}
	s.log.Debug("social search done",
		logger.String("ticker", req.Ticker),
		logger.Int("posts", len(posts)))

	markdown := report.Social(report.SocialInput{
		Ticker:    req.Ticker,
		Company:   req.Company,
		Theme:     req.Theme,
		Directive: req.Directive,
		Now:       s.now(),
		Posts:     posts,
	})

	return &models.SocialPayload{
		Report:    markdown,
		PostCount: len(posts),
	}, nil
}
