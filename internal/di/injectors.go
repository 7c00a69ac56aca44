//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"fitheat/internal"
	"fitheat/internal/archive"
	"fitheat/internal/clients"
	"fitheat/internal/controllers"
	"fitheat/internal/credentials"
	"fitheat/internal/engine"
	"fitheat/internal/providers"
	"fitheat/internal/services"
	"fitheat/internal/sinks"
	"fitheat/internal/structures"
	"io"
)

func InitApp(cfg *structures.CliFlags, out io.Writer) (*internal.App, func(), error) {

	wire.Build(
		providers.NewConfigProvider,
		provideLogger,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewHttpClientProvider,
		providers.NewLocationProvider,

		credentials.NewStore,
		clients.NewOAuthRefresher,
		clients.NewFitbitClient,
		provideCompressor,
		archive.NewFileManager,
		services.NewTokenService,
		services.NewFetchService,

		engine.NewPlanner,
		engine.NewScorer,
		sinks.NewSvgHeatmapSink,
		sinks.NewJsonSeriesSink,
		sinks.NewSeriesSinks,
		sinks.NewRatioReporter,
		controllers.NewHeatmapController,
		controllers.NewRatioController,
		internal.InitKinds,
		internal.NewApp,
	)

	return nil, nil, nil
}
