package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/pkg/logger"
)

// GatherParams are the inputs to one orchestrated gather run.
type GatherParams struct {
	Ticker    string
	Company   string
	Agent     string
	Sources   []models.Source // nil means the agent's defaults
	Theme     string
	Directive string
	DryRun    bool
}

// Orchestrator runs the full gather pipeline: source execution with error
// isolation, persistence staging, a single conditional reindex, and the
// digest summary.
type Orchestrator struct {
	registry *Registry
	store    repository.StorageSink
	reindex  repository.ReindexSink
	metrics  repository.Metrics
	log      *logger.Logger

	agents      map[string][]models.Source
	sourceDelay time.Duration
	now         func() time.Time
	sleep       func(time.Duration)
}

// NewOrchestrator creates the orchestrator. agents maps agent names to their
// default source lists; sourceDelay paces consecutive source runs.
func NewOrchestrator(
	registry *Registry,
	store repository.StorageSink,
	reindex repository.ReindexSink,
	metrics repository.Metrics,
	agents map[string][]models.Source,
	sourceDelay time.Duration,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		registry:    registry,
		store:       store,
		reindex:     reindex,
		metrics:     metrics,
		log:         log,
		agents:      agents,
		sourceDelay: sourceDelay,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// Gather runs the pipeline for one ticker. Only an unknown agent is fatal to
// the request; every per-source fault is isolated into the report.
func (o *Orchestrator) Gather(ctx context.Context, p GatherParams) (*models.GatherReport, error) {
	ticker := strings.ToUpper(strings.TrimPrefix(p.Ticker, "$"))
	timestamp := o.now().UTC()

	sources := p.Sources
	if sources == nil {
		defaults, ok := o.agents[p.Agent]
		if !ok {
			return nil, fmt.Errorf("unknown agent %q", p.Agent)
		}
		sources = defaults
	}

	report := &models.GatherReport{
		Ticker:    ticker,
		Company:   p.Company,
		Agent:     p.Agent,
		Timestamp: timestamp,
		DryRun:    p.DryRun,
		Sources:   sources,
	}

	if len(sources) == 0 {
		report.GatherResults = []models.GatherResult{}
		report.StoreResults = []models.StoreResult{}
		report.Reindex = models.ReindexResult{Success: false, Message: "No sources to gather"}
		report.Summary = fmt.Sprintf("No sources configured for agent '%s'", p.Agent)
		return report, nil
	}

	req := SourceRequest{
		Ticker:    ticker,
		Company:   p.Company,
		Theme:     p.Theme,
		Directive: p.Directive,
	}

	// Step 1: gather each source, error-isolated, paced between runs.
	for i, source := range sources {
		started := o.now()
		result := o.registry.Run(ctx, source, req)
		o.metrics.RecordGather(string(source), result.Success)
		o.metrics.RecordLatency("gather_"+string(source), o.now().Sub(started).Seconds())
		if result.Success {
			o.metrics.RecordSourceCount(string(source), result.MetricCount)
		} else {
			o.log.Warn("source gather failed",
				logger.String("ticker", ticker),
				logger.String("source", string(source)),
				logger.String("error", result.Error))
		}
		report.GatherResults = append(report.GatherResults, result)

		if i < len(sources)-1 {
			o.sleep(o.sourceDelay)
		}
	}

	// Step 2: stage successful non-empty results.
	anyStored := false
	var storedKeys []string
	for _, gr := range report.GatherResults {
		if !gr.Success || gr.Content == "" {
			report.StoreResults = append(report.StoreResults, models.StoreResult{
				Source:  gr.Source,
				Success: false,
				Message: fmt.Sprintf("Skipped: %s gather failed", gr.Source),
			})
			continue
		}
		sr := o.storeResult(ctx, ticker, gr, timestamp, p.DryRun)
		o.metrics.RecordStore(sr.Success)
		report.StoreResults = append(report.StoreResults, sr)
		if sr.Success {
			anyStored = true
			storedKeys = append(storedKeys, sr.Key)
		}
	}

	// Step 3: reindex once, iff anything was stored.
	if anyStored {
		report.Reindex = o.triggerReindex(ctx, ticker, storedKeys, timestamp, p.DryRun)
		o.metrics.RecordReindex(report.Reindex.Success)
	} else {
		report.Reindex = models.ReindexResult{Success: false, Message: "No data stored — skipping reindex"}
	}

	// Step 4: digest summary.
	report.Summary = o.summarize(ticker, report.GatherResults)
	for _, gr := range report.GatherResults {
		if gr.Success {
			report.Success = true
			break
		}
	}

	o.log.Info("gather complete",
		logger.String("ticker", ticker),
		logger.String("agent", p.Agent),
		logger.Bool("success", report.Success),
		logger.Bool("dry_run", p.DryRun),
		logger.String("summary", report.Summary))

	return report, nil
}

func documentKey(ticker string, source models.Source, ts time.Time) string {
	return fmt.Sprintf("research/%s/%s_%s.md", ts.Format("2006-01-02"), ticker, source)
}

func (o *Orchestrator) storeResult(ctx context.Context, ticker string, gr models.GatherResult, ts time.Time, dryRun bool) models.StoreResult {
	key := documentKey(ticker, gr.Source, ts)
	if dryRun {
		return models.StoreResult{
			Source:  gr.Source,
			Success: true,
			Key:     key,
			Message: fmt.Sprintf("[DRY RUN] Would upload to %s", key),
		}
	}

	stored, err := o.store.Store(ctx, models.ResearchDocument{
		Key:        key,
		Ticker:     ticker,
		Source:     gr.Source,
		GatheredAt: ts,
		Content:    gr.Content,
	})
	if err != nil {
		return models.StoreResult{
			Source:  gr.Source,
			Success: false,
			Message: fmt.Sprintf("Upload failed: %v", err),
		}
	}
	return models.StoreResult{
		Source:  gr.Source,
		Success: true,
		Key:     stored,
		Message: fmt.Sprintf("Stored %s", stored),
	}
}

func (o *Orchestrator) triggerReindex(ctx context.Context, ticker string, keys []string, ts time.Time, dryRun bool) models.ReindexResult {
	if dryRun {
		return models.ReindexResult{Success: true, Message: "[DRY RUN] Would trigger reindex"}
	}
	msg, err := o.reindex.Trigger(ctx, models.ReindexEvent{
		Ticker:      ticker,
		Documents:   keys,
		RequestedAt: ts,
	})
	if err != nil {
		return models.ReindexResult{Success: false, Message: fmt.Sprintf("Reindex failed: %v", err)}
	}
	return models.ReindexResult{Success: true, Message: msg}
}

func (o *Orchestrator) summarize(ticker string, results []models.GatherResult) string {
	var labels, failed []string
	for _, gr := range results {
		if gr.Success {
			labels = append(labels, Label(gr.Source, gr.MetricCount))
		} else {
			failed = append(failed, string(gr.Source))
		}
	}

	summary := fmt.Sprintf("$%s: no data gathered", ticker)
	if len(labels) > 0 {
		summary = fmt.Sprintf("$%s: %s", ticker, strings.Join(labels, ", "))
	}
	if len(failed) > 0 {
		summary += fmt.Sprintf(" (failed: %s)", strings.Join(failed, ", "))
	}
	return summary
}
