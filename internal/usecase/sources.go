package usecase

import (
	"context"
	"fmt"

	"FinGather/internal/domain/models"
	"FinGather/pkg/logger"
)

// SourceRequest carries the per-run inputs every source handler receives.
type SourceRequest struct {
	Ticker    string
	Company   string
	Theme     string
	Directive string
}

// SourceHandler gathers one research source into a tagged payload.
type SourceHandler interface {
	Gather(ctx context.Context, req SourceRequest) (models.SourcePayload, error)
}

// Registry is the static source registry. The handler set is fixed at
// construction; registering an unknown tag is a construction-time error, not
// a runtime surprise.
type Registry struct {
	handlers map[models.Source]SourceHandler
	log      *logger.Logger
}

var knownSources = map[models.Source]bool{
	models.SourceWeb:          true,
	models.SourceFundamentals: true,
	models.SourceSocial:       true,
	models.SourceTechnicals:   true,
}

// NewRegistry builds a registry from the given handlers.
func NewRegistry(handlers map[models.Source]SourceHandler, log *logger.Logger) (*Registry, error) {
	for tag := range handlers {
		if !knownSources[tag] {
			return nil, fmt.Errorf("unknown source tag %q", tag)
		}
	}
	return &Registry{handlers: handlers, log: log}, nil
}

// Has reports whether source has a registered handler.
func (r *Registry) Has(source models.Source) bool {
	_, ok := r.handlers[source]
	return ok
}

// Run executes one source with full error isolation: handler errors, missing
// handlers, and panics all become a failed GatherResult and never propagate.
func (r *Registry) Run(ctx context.Context, source models.Source, req SourceRequest) (result models.GatherResult) {
	result = models.GatherResult{Source: source}

	handler, ok := r.handlers[source]
	if !ok {
		result.Error = fmt.Sprintf("Unknown source: %s", source)
		return result
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("source handler panic",
				logger.String("source", string(source)),
				logger.Any("panic", rec))
			result = models.GatherResult{
				Source: source,
				Error:  fmt.Sprintf("panic: %v", rec),
			}
		}
	}()

	payload, err := handler.Gather(ctx, req)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.MetricCount = payload.Count()
	result.Content = payload.Markdown()
	return result
}

// Label renders the digest label for a source result, falling back to the
// generic form for tags without a dedicated payload variant.
func Label(source models.Source, count int) string {
	switch source {
	case models.SourceWeb:
		return fmt.Sprintf("%d articles/filings", count)
	case models.SourceFundamentals:
		return fmt.Sprintf("%d financial metrics", count)
	case models.SourceSocial:
		return fmt.Sprintf("%d social posts", count)
	case models.SourceTechnicals:
		return fmt.Sprintf("%d technical signals", count)
	default:
		return models.GenericLabel(source, count)
	}
}
