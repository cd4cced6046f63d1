package main

import (
	"context"
	"flag"
	"log"
	"os"

	"FinGather/internal/di"
	"FinGather/pkg/config"
	"FinGather/pkg/server"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	ticker := flag.String("ticker", "", "run a single gather for this ticker and exit")
	company := flag.String("company", "", "company name (defaults to ticker)")
	agent := flag.String("agent", "nova", "agent whose default sources to gather")
	sources := flag.String("sources", "", "comma-separated source override (web,fundamentals,social,technicals)")
	theme := flag.String("theme", "", "research theme")
	directive := flag.String("directive", "", "research directive")
	dryRun := flag.Bool("dry-run", false, "gather without storing or reindexing")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// One-shot mode: gather a single ticker and exit.
	if *ticker != "" {
		report, err := app.RunOnce(context.Background(), server.GatherOnceParams{
			Ticker:    *ticker,
			Company:   *company,
			Agent:     *agent,
			Sources:   *sources,
			Theme:     *theme,
			Directive: *directive,
			DryRun:    *dryRun,
		})
		if err != nil {
			log.Fatalf("gather failed: %v", err)
		}
		if !report.Success {
			os.Exit(1)
		}
		return
	}

	log.Printf("env=%s clickhouse=%s kafka=%v", cfg.Environment, cfg.ClickHouse.Host, cfg.Kafka.Brokers)

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
