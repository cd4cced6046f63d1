package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalYAML = `
environment: test
sec:
  user_agent: "test/1.0 (dev@example.com)"
clickhouse:
  host: localhost
kafka:
  brokers: [localhost:9092]
  reindex_topic: test.reindex
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Gather.LookbackYears != 5 {
		t.Fatalf("unexpected lookback %d", cfg.Gather.LookbackYears)
	}
	if cfg.Gather.SourceDelay != 200*time.Millisecond {
		t.Fatalf("unexpected source delay %v", cfg.Gather.SourceDelay)
	}
	if got := cfg.Gather.Agents["nova"]; len(got) != 2 || got[0] != "web" || got[1] != "fundamentals" {
		t.Fatalf("unexpected nova sources %v", got)
	}
	if got := cfg.Gather.Agents["max"]; len(got) != 0 {
		t.Fatalf("max should default to no sources, got %v", got)
	}
	if cfg.SEC.CIKTTL != 24*time.Hour {
		t.Fatalf("unexpected cik ttl %v", cfg.SEC.CIKTTL)
	}
	if cfg.ClickHouse.Table != "fingather.research_documents" {
		t.Fatalf("unexpected table %q", cfg.ClickHouse.Table)
	}
}

func TestLoadRequiresUserAgent(t *testing.T) {
	yaml := `
environment: test
clickhouse:
  host: localhost
kafka:
  brokers: [localhost:9092]
  reindex_topic: test.reindex
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected a validation error for a missing SEC user agent")
	}
}

func TestLoadRejectsUnknownAgentSource(t *testing.T) {
	yaml := minimalYAML + `
gather:
  agents:
    nova: [web, astrology]
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected a validation error for an unknown source")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "env-key")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Finnhub.APIKey != "env-key" {
		t.Fatalf("unexpected api key %q", cfg.Finnhub.APIKey)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "k1:9092" {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" {
		t.Fatalf("REDIS_ADDR should enable redis, got %+v", cfg.Redis)
	}
}
