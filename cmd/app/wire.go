//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/billboard-insights/internal/bootstrap"
	"github.com/yanqian/billboard-insights/internal/domain/billboard"
	"github.com/yanqian/billboard-insights/internal/domain/forecast"
	"github.com/yanqian/billboard-insights/internal/infra/config"
	httpiface "github.com/yanqian/billboard-insights/internal/interface/http"
	"github.com/yanqian/billboard-insights/pkg/logger"
	"github.com/yanqian/billboard-insights/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		bootstrap.NewResources,
		provideBillboardConfig,
		provideCatalog,
		provideGenerator,
		provideRecorder,
		provideLookupStore,
		billboard.NewService,
		wire.Bind(new(billboard.Generator), new(*forecast.Generator)),
		wire.Bind(new(billboard.Recorder), new(*metrics.Recorder)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
