// Package cli implements the billboardctl command tree.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
	"github.com/yanqian/billboard-insights/internal/domain/forecast"
	"github.com/yanqian/billboard-insights/internal/infra/catalog"
	"github.com/yanqian/billboard-insights/internal/infra/config"
	"github.com/yanqian/billboard-insights/internal/infra/lookupstore"
)

// ServiceFactory builds a billboard service; historyDays of 0 keeps the configured value.
type ServiceFactory func(ctx context.Context, historyDays int) (billboard.Service, error)

// NewRootCommand assembles billboardctl around factory.
func NewRootCommand(factory ServiceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "billboardctl",
		Short: "Inspect the billboard catalog and impression forecasts",
		Long: `billboardctl reads the same catalog and forecasting engine as the API server.

Example usage:
  billboardctl list
  billboardctl predict B001
  billboardctl predict 7 --days 30 --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCommand(factory), newPredictCommand(factory))
	return root
}

// DefaultFactory loads configuration the way the server does, minus the shared lookup store.
func DefaultFactory(stderr io.Writer) ServiceFactory {
	return func(ctx context.Context, historyDays int) (billboard.Service, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

		cat, err := catalog.Open(ctx, cfg.Catalog, logger)
		if err != nil {
			return nil, err
		}
		if historyDays <= 0 {
			historyDays = cfg.Forecast.HistoryDays
		}
		gen := forecast.NewGenerator(forecast.WithLocation(cfg.Forecast.Location()))
		return billboard.NewService(
			billboard.Config{HistoryDays: historyDays, TrendingLimit: cfg.Billboard.TrendingLimit},
			cat, lookupstore.NewMemoryStore(), gen, nil, logger,
		), nil
	}
}

// Execute runs the CLI against the real configuration.
func Execute(ctx context.Context) error {
	return NewRootCommand(DefaultFactory(os.Stderr)).ExecuteContext(ctx)
}
