package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/usecase"
	pkgch "FinGather/pkg/clickhouse"
	"FinGather/pkg/config"
	xhttp "FinGather/pkg/http"
	pkgkafka "FinGather/pkg/kafka"
	applogger "FinGather/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg          *config.Config
	orchestrator *usecase.Orchestrator
	chClient     *pkgch.Client
	producer     *pkgkafka.Producer
	httpServer   *xhttp.Server
	httpHandler  xhttp.Handler
	log          *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	orchestrator *usecase.Orchestrator,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	httpHandler xhttp.Handler,
	log *applogger.Logger,
) *App {
	return &App{
		cfg:          cfg,
		orchestrator: orchestrator,
		chClient:     chClient,
		producer:     producer,
		httpHandler:  httpHandler,
		log:          log,
	}
}

// Run starts the HTTP service and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsLogging(a.log, time.Second),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("gather service started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// GatherOnceParams are the CLI inputs for a single gather run.
type GatherOnceParams struct {
	Ticker    string
	Company   string
	Agent     string
	Sources   string // comma-separated, empty for agent defaults
	Theme     string
	Directive string
	DryRun    bool
}

// RunOnce executes a single gather and prints the digest. Returns the report
// so the caller can decide the exit code.
func (a *App) RunOnce(ctx context.Context, p GatherOnceParams) (*models.GatherReport, error) {
	defer a.close()

	var sources []models.Source
	if p.Sources != "" {
		for _, s := range strings.Split(p.Sources, ",") {
			sources = append(sources, models.Source(strings.TrimSpace(s)))
		}
	}
	company := p.Company
	if company == "" {
		company = p.Ticker
	}

	report, err := a.orchestrator.Gather(ctx, usecase.GatherParams{
		Ticker:    p.Ticker,
		Company:   company,
		Agent:     p.Agent,
		Sources:   sources,
		Theme:     p.Theme,
		Directive: p.Directive,
		DryRun:    p.DryRun,
	})
	if err != nil {
		return nil, err
	}

	fmt.Println(report.Summary)
	for _, sr := range report.StoreResults {
		if sr.Success {
			fmt.Printf("  stored: %s\n", sr.Key)
		}
	}
	if report.Reindex.Success {
		fmt.Printf("  reindex: %s\n", report.Reindex.Message)
	}
	return report, nil
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	a.close()
	a.log.Info("shutdown complete")
	return nil
}

func (a *App) close() {
	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.log.Warn("clickhouse close error", applogger.Error(err))
		}
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.log.Warn("kafka producer close error", applogger.Error(err))
		}
	}
}
