//go:build wireinject
// +build wireinject

package di

import (
	"FinGather/pkg/config"
	"FinGather/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideCacheService,
		ProvideCIKCache,

		// Upstream data clients
		ProvideEDGARClient,
		ProvideFinnhubClient,
		ProvideRedditClient,
		ProvideMarketClient,

		// Sinks
		ProvideStorageSink,
		ProvideReindexSink,

		// Source handlers and orchestration
		ProvideFundamentalsSource,
		ProvideWebSource,
		ProvideSocialSource,
		ProvideTechnicalsSource,
		ProvideRegistry,
		ProvideOrchestrator,

		// HTTP surface
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
