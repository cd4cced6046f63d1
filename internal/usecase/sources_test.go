package usecase

import (
	"context"
	"errors"
	"testing"

	"FinGather/internal/domain/models"
	"FinGather/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

type stubHandler struct {
	payload models.SourcePayload
	err     error
	panics  bool
	calls   int
}

func (h *stubHandler) Gather(ctx context.Context, req SourceRequest) (models.SourcePayload, error) {
	h.calls++
	if h.panics {
		panic("boom")
	}
	return h.payload, h.err
}

func TestNewRegistryRejectsUnknownTag(t *testing.T) {
	log := newTestLogger(t)
	_, err := NewRegistry(map[models.Source]SourceHandler{
		models.Source("astrology"): &stubHandler{},
	}, log)
	if err == nil {
		t.Fatalf("expected a construction error for an unknown tag")
	}
}

func TestRegistryRunSuccess(t *testing.T) {
	log := newTestLogger(t)
	reg, err := NewRegistry(map[models.Source]SourceHandler{
		models.SourceSocial: &stubHandler{payload: &models.SocialPayload{Report: "# doc", PostCount: 7}},
	}, log)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	result := reg.Run(context.Background(), models.SourceSocial, SourceRequest{Ticker: "CAKE"})
	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.MetricCount != 7 || result.Content != "# doc" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRegistryRunUnknownSource(t *testing.T) {
	log := newTestLogger(t)
	reg, err := NewRegistry(map[models.Source]SourceHandler{}, log)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	result := reg.Run(context.Background(), models.SourceWeb, SourceRequest{Ticker: "CAKE"})
	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Error != "Unknown source: web" {
		t.Fatalf("unexpected error %q", result.Error)
	}
}

func TestRegistryRunHandlerError(t *testing.T) {
	log := newTestLogger(t)
	reg, err := NewRegistry(map[models.Source]SourceHandler{
		models.SourceSocial: &stubHandler{err: errors.New("upstream 503")},
	}, log)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	result := reg.Run(context.Background(), models.SourceSocial, SourceRequest{Ticker: "CAKE"})
	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Error != "upstream 503" {
		t.Fatalf("unexpected error %q", result.Error)
	}
}

func TestRegistryRunIsolatesPanics(t *testing.T) {
	log := newTestLogger(t)
	reg, err := NewRegistry(map[models.Source]SourceHandler{
		models.SourceWeb: &stubHandler{panics: true},
	}, log)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	result := reg.Run(context.Background(), models.SourceWeb, SourceRequest{Ticker: "CAKE"})
	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Error != "panic: boom" {
		t.Fatalf("unexpected error %q", result.Error)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		source models.Source
		count  int
		want   string
	}{
		{models.SourceWeb, 5, "5 articles/filings"},
		{models.SourceFundamentals, 16, "16 financial metrics"},
		{models.SourceSocial, 12, "12 social posts"},
		{models.SourceTechnicals, 4, "4 technical signals"},
		{models.Source("custom"), 2, "2 items from custom"},
	}
	for _, c := range cases {
		if got := Label(c.source, c.count); got != c.want {
			t.Fatalf("Label(%s, %d) = %q, want %q", c.source, c.count, got, c.want)
		}
	}
}
