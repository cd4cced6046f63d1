package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"FinGather/internal/domain/models"
)

type fakeStore struct {
	docs []models.ResearchDocument
	err  error
}

func (s *fakeStore) Store(ctx context.Context, doc models.ResearchDocument) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.docs = append(s.docs, doc)
	return doc.Key, nil
}

func (s *fakeStore) Health(ctx context.Context) error { return nil }

type fakeReindex struct {
	events []models.ReindexEvent
	err    error
}

func (r *fakeReindex) Trigger(ctx context.Context, event models.ReindexEvent) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.events = append(r.events, event)
	return "Reindex event published to test-topic", nil
}

type fakeMetrics struct {
	gathers int
	stores  int
	reindex int
}

func (m *fakeMetrics) RecordGather(source string, success bool)    { m.gathers++ }
func (m *fakeMetrics) RecordStore(success bool)                    { m.stores++ }
func (m *fakeMetrics) RecordReindex(success bool)                  { m.reindex++ }
func (m *fakeMetrics) RecordSourceCount(source string, count int)  {}
func (m *fakeMetrics) RecordLatency(operation string, sec float64) {}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestOrchestrator(t *testing.T, handlers map[models.Source]SourceHandler, store *fakeStore, reindex *fakeReindex) (*Orchestrator, *fakeMetrics, *[]time.Duration) {
	t.Helper()
	log := newTestLogger(t)
	reg, err := NewRegistry(handlers, log)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	metrics := &fakeMetrics{}
	agents := map[string][]models.Source{
		"nova": {models.SourceWeb, models.SourceFundamentals},
		"luna": {models.SourceSocial},
		"max":  {},
	}
	o := NewOrchestrator(reg, store, reindex, metrics, agents, 200*time.Millisecond, log)

	var slept []time.Duration
	o.now = func() time.Time { return fixedNow }
	o.sleep = func(d time.Duration) { slept = append(slept, d) }
	return o, metrics, &slept
}

func webStub(articles, filings int) *stubHandler {
	return &stubHandler{payload: &models.WebPayload{Report: "# web", ArticleCount: articles, FilingCount: filings}}
}

func fundamentalsStub(count int) *stubHandler {
	doc := models.NewMetricsDocument()
	for i := 0; i < count; i++ {
		doc.Income[string(rune('a'+i))] = models.MetricSeries{{}}
	}
	return &stubHandler{payload: &models.FundamentalsPayload{Report: "# fundamentals", Metrics: doc}}
}

func TestGatherDigestAndStorage(t *testing.T) {
	store := &fakeStore{}
	reindex := &fakeReindex{}
	o, metrics, slept := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceWeb:          webStub(3, 2),
		models.SourceFundamentals: fundamentalsStub(16),
	}, store, reindex)

	report, err := o.Gather(context.Background(), GatherParams{Ticker: "$cake", Agent: "nova"})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if report.Ticker != "CAKE" {
		t.Fatalf("ticker not normalized: %q", report.Ticker)
	}
	if !report.Success {
		t.Fatalf("expected success")
	}
	if report.Summary != "$CAKE: 5 articles/filings, 16 financial metrics" {
		t.Fatalf("unexpected summary %q", report.Summary)
	}

	if len(store.docs) != 2 {
		t.Fatalf("expected 2 stored documents, got %d", len(store.docs))
	}
	wantKey := "research/2025-06-01/CAKE_web.md"
	if store.docs[0].Key != wantKey {
		t.Fatalf("unexpected key %q, want %q", store.docs[0].Key, wantKey)
	}

	if len(reindex.events) != 1 {
		t.Fatalf("expected exactly one reindex event, got %d", len(reindex.events))
	}
	ev := reindex.events[0]
	if ev.Ticker != "CAKE" || len(ev.Documents) != 2 {
		t.Fatalf("unexpected reindex event %+v", ev)
	}

	// pacing happens between sources, not after the last one
	if len(*slept) != 1 || (*slept)[0] != 200*time.Millisecond {
		t.Fatalf("unexpected pacing %v", *slept)
	}

	if metrics.gathers != 2 || metrics.stores != 2 || metrics.reindex != 1 {
		t.Fatalf("unexpected metric counts %+v", metrics)
	}
}

func TestGatherIsolatesFailedSource(t *testing.T) {
	store := &fakeStore{}
	reindex := &fakeReindex{}
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceWeb:          webStub(3, 2),
		models.SourceFundamentals: &stubHandler{err: errors.New("sec down")},
	}, store, reindex)

	report, err := o.Gather(context.Background(), GatherParams{Ticker: "CAKE", Agent: "nova"})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if !report.Success {
		t.Fatalf("one succeeding source should mark the run successful")
	}
	if report.Summary != "$CAKE: 5 articles/filings (failed: fundamentals)" {
		t.Fatalf("unexpected summary %q", report.Summary)
	}

	if len(report.StoreResults) != 2 {
		t.Fatalf("expected a store result per source")
	}
	skipped := report.StoreResults[1]
	if skipped.Success || skipped.Message != "Skipped: fundamentals gather failed" {
		t.Fatalf("unexpected skipped result %+v", skipped)
	}
	if len(store.docs) != 1 {
		t.Fatalf("only the successful source should be stored")
	}
	if len(reindex.events) != 1 {
		t.Fatalf("reindex should still fire for the stored document")
	}
}

func TestGatherAllFailedSkipsReindex(t *testing.T) {
	store := &fakeStore{}
	reindex := &fakeReindex{}
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceSocial: &stubHandler{err: errors.New("rate limited")},
	}, store, reindex)

	report, err := o.Gather(context.Background(), GatherParams{Ticker: "CAKE", Agent: "luna"})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if report.Success {
		t.Fatalf("expected failure")
	}
	if report.Summary != "$CAKE: no data gathered (failed: social)" {
		t.Fatalf("unexpected summary %q", report.Summary)
	}
	if report.Reindex.Success || report.Reindex.Message != "No data stored — skipping reindex" {
		t.Fatalf("unexpected reindex result %+v", report.Reindex)
	}
	if len(reindex.events) != 0 {
		t.Fatalf("reindex must not fire when nothing was stored")
	}
}

func TestGatherEmptyAgent(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{}, &fakeStore{}, &fakeReindex{})

	report, err := o.Gather(context.Background(), GatherParams{Ticker: "CAKE", Agent: "max"})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if report.Summary != "No sources configured for agent 'max'" {
		t.Fatalf("unexpected summary %q", report.Summary)
	}
	if report.Reindex.Message != "No sources to gather" {
		t.Fatalf("unexpected reindex message %q", report.Reindex.Message)
	}
}

func TestGatherUnknownAgent(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{}, &fakeStore{}, &fakeReindex{})

	if _, err := o.Gather(context.Background(), GatherParams{Ticker: "CAKE", Agent: "zorp"}); err == nil {
		t.Fatalf("unknown agent must be a request error")
	}
}

func TestGatherExplicitSourcesOverrideAgent(t *testing.T) {
	store := &fakeStore{}
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceWeb: webStub(1, 0),
	}, store, &fakeReindex{})

	report, err := o.Gather(context.Background(), GatherParams{
		Ticker:  "CAKE",
		Agent:   "zorp", // would be fatal without the override
		Sources: []models.Source{models.SourceWeb},
	})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if !report.Success || len(store.docs) != 1 {
		t.Fatalf("explicit sources should bypass agent defaults")
	}
}

func TestGatherDryRun(t *testing.T) {
	store := &fakeStore{}
	reindex := &fakeReindex{}
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceWeb: webStub(2, 1),
	}, store, reindex)

	report, err := o.Gather(context.Background(), GatherParams{
		Ticker:  "CAKE",
		Sources: []models.Source{models.SourceWeb},
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if len(store.docs) != 0 || len(reindex.events) != 0 {
		t.Fatalf("dry run must not touch the sinks")
	}
	sr := report.StoreResults[0]
	if !sr.Success || sr.Message != "[DRY RUN] Would upload to research/2025-06-01/CAKE_web.md" {
		t.Fatalf("unexpected store result %+v", sr)
	}
	if !report.Reindex.Success || report.Reindex.Message != "[DRY RUN] Would trigger reindex" {
		t.Fatalf("unexpected reindex result %+v", report.Reindex)
	}
}

func TestGatherStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	reindex := &fakeReindex{}
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceWeb: webStub(2, 1),
	}, store, reindex)

	report, err := o.Gather(context.Background(), GatherParams{
		Ticker:  "CAKE",
		Sources: []models.Source{models.SourceWeb},
	})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	sr := report.StoreResults[0]
	if sr.Success || sr.Message != "Upload failed: connection refused" {
		t.Fatalf("unexpected store result %+v", sr)
	}
	if report.Reindex.Success || len(reindex.events) != 0 {
		t.Fatalf("reindex must not fire when every store failed")
	}
	if !report.Success {
		t.Fatalf("gather success is independent of staging failures")
	}
}

func TestGatherReindexFailure(t *testing.T) {
	store := &fakeStore{}
	reindex := &fakeReindex{err: errors.New("broker unreachable")}
	o, _, _ := newTestOrchestrator(t, map[models.Source]SourceHandler{
		models.SourceWeb: webStub(2, 1),
	}, store, reindex)

	report, err := o.Gather(context.Background(), GatherParams{
		Ticker:  "CAKE",
		Sources: []models.Source{models.SourceWeb},
	})
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if report.Reindex.Success || report.Reindex.Message != "Reindex failed: broker unreachable" {
		t.Fatalf("unexpected reindex result %+v", report.Reindex)
	}
}
