package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"FinGather/internal/domain/models"
	"FinGather/internal/domain/repository"
	"FinGather/internal/handler/api"
	internalrepo "FinGather/internal/repository"
	icache "FinGather/internal/service/cache"
	"FinGather/internal/service/edgar"
	"FinGather/internal/service/finnhub"
	"FinGather/internal/service/market"
	"FinGather/internal/service/ratelimit"
	"FinGather/internal/service/reddit"
	"FinGather/internal/usecase"
	pkgcache "FinGather/pkg/cache"
	pkgch "FinGather/pkg/clickhouse"
	"FinGather/pkg/config"
	xhttp "FinGather/pkg/http"
	pkgkafka "FinGather/pkg/kafka"
	"FinGather/pkg/logger"
	"FinGather/pkg/metrics"
	"FinGather/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return logger.New(&logger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the schema.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS fingather",
		"CREATE TABLE IF NOT EXISTS " + cfg.ClickHouse.Table +
			" (key String, ticker String, source String, gathered_at DateTime, content String)" +
			" ENGINE=ReplacingMergeTree ORDER BY (key)",
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideCacheService creates the cache backend: memory-over-redis when redis
// is configured, otherwise in-process memory only.
func ProvideCacheService(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}

	host, port, err := splitHostPort(cfg.Redis.Addr)
	if err != nil {
		return nil, fmt.Errorf("redis addr: %w", err)
	}
	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Redis.Password),
		pkgcache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, err
	}
	return pkgcache.NewLayeredCache(redisCache), nil
}

func splitHostPort(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

// ProvideCIKCache creates the ticker to CIK cache.
func ProvideCIKCache(svc pkgcache.Service, cfg *config.Config) *icache.CIKCache {
	return icache.NewCIKCache(svc, cfg.SEC.CIKTTL)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideEDGARClient creates the SEC EDGAR client.
func ProvideEDGARClient(cfg *config.Config, cikCache *icache.CIKCache, log *logger.Logger) *edgar.Client {
	httpClient := xhttp.NewClient(xhttp.WithTimeout(cfg.SEC.Timeout))
	return edgar.NewClient(httpClient, cfg.SEC.UserAgent, ratelimit.New(), cikCache, log)
}

// ProvideFinnhubClient creates the Finnhub REST client.
func ProvideFinnhubClient(cfg *config.Config, log *logger.Logger) *finnhub.Client {
	return finnhub.New(cfg.Finnhub.APIKey, cfg.Finnhub.BaseURL, cfg.Finnhub.Timeout, log)
}

// ProvideRedditClient creates the reddit search client.
func ProvideRedditClient(cfg *config.Config) *reddit.Client {
	return reddit.New(cfg.Reddit.UserAgent, cfg.Reddit.Timeout)
}

// ProvideMarketClient creates the market data client.
func ProvideMarketClient() *market.Client {
	return market.New()
}

// ProvideStorageSink creates the ClickHouse research document sink.
func ProvideStorageSink(chClient *pkgch.Client, cfg *config.Config) repository.StorageSink {
	return internalrepo.NewClickHouseResearchStore(chClient.DB(), cfg.ClickHouse.Table)
}

// ProvideReindexSink creates the Kafka reindex sink.
func ProvideReindexSink(producer *pkgkafka.Producer, cfg *config.Config) repository.ReindexSink {
	return internalrepo.NewKafkaReindexSink(producer, cfg.Kafka.ReindexTopic)
}

// ProvideFundamentalsSource creates the fundamentals source handler.
func ProvideFundamentalsSource(edgarClient *edgar.Client, finnhubClient *finnhub.Client, cfg *config.Config, log *logger.Logger) *usecase.FundamentalsSource {
	return usecase.NewFundamentalsSource(edgarClient, edgarClient, finnhubClient, cfg.Gather.LookbackYears, log)
}

// ProvideWebSource creates the web source handler.
func ProvideWebSource(finnhubClient *finnhub.Client, edgarClient *edgar.Client, log *logger.Logger) *usecase.WebSource {
	return usecase.NewWebSource(finnhubClient, edgarClient, edgarClient, log)
}

// ProvideSocialSource creates the social source handler.
func ProvideSocialSource(redditClient *reddit.Client, cfg *config.Config, log *logger.Logger) *usecase.SocialSource {
	return usecase.NewSocialSource(redditClient, cfg.Gather.SocialLimit, log)
}

// ProvideTechnicalsSource creates the technicals source handler.
func ProvideTechnicalsSource(marketClient *market.Client, log *logger.Logger) *usecase.TechnicalsSource {
	return usecase.NewTechnicalsSource(marketClient, log)
}

// ProvideRegistry builds the static source registry.
func ProvideRegistry(
	web *usecase.WebSource,
	fundamentals *usecase.FundamentalsSource,
	social *usecase.SocialSource,
	technicals *usecase.TechnicalsSource,
	log *logger.Logger,
) (*usecase.Registry, error) {
	return usecase.NewRegistry(map[models.Source]usecase.SourceHandler{
		models.SourceWeb:          web,
		models.SourceFundamentals: fundamentals,
		models.SourceSocial:       social,
		models.SourceTechnicals:   technicals,
	}, log)
}

// ProvideOrchestrator creates the gather orchestrator.
func ProvideOrchestrator(
	registry *usecase.Registry,
	store repository.StorageSink,
	reindex repository.ReindexSink,
	m repository.Metrics,
	cfg *config.Config,
	log *logger.Logger,
) *usecase.Orchestrator {
	agents := make(map[string][]models.Source, len(cfg.Gather.Agents))
	for agent, sources := range cfg.Gather.Agents {
		list := make([]models.Source, 0, len(sources))
		for _, s := range sources {
			list = append(list, models.Source(s))
		}
		agents[agent] = list
	}
	return usecase.NewOrchestrator(registry, store, reindex, m, agents, cfg.Gather.SourceDelay, log)
}

// ProvideHTTPHandler creates the echo handler set.
func ProvideHTTPHandler(log *logger.Logger, orchestrator *usecase.Orchestrator, fundamentals *usecase.FundamentalsSource) xhttp.Handler {
	return api.NewGatherEchoHandler(log, orchestrator, fundamentals)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	orchestrator *usecase.Orchestrator,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	handler xhttp.Handler,
	log *logger.Logger,
) *server.App {
	return server.New(cfg, orchestrator, chClient, producer, handler, log)
}
