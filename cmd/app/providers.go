package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/billboard-insights/internal/bootstrap"
	"github.com/yanqian/billboard-insights/internal/domain/billboard"
	"github.com/yanqian/billboard-insights/internal/domain/forecast"
	"github.com/yanqian/billboard-insights/internal/infra/catalog"
	"github.com/yanqian/billboard-insights/internal/infra/config"
	"github.com/yanqian/billboard-insights/internal/infra/lookupstore"
	apperrors "github.com/yanqian/billboard-insights/pkg/errors"
	"github.com/yanqian/billboard-insights/pkg/metrics"
)

func provideBillboardConfig(cfg *config.Config) billboard.Config {
	return billboard.Config{
		HistoryDays:   cfg.Forecast.HistoryDays,
		TrendingLimit: cfg.Billboard.TrendingLimit,
	}
}

func provideCatalog(cfg *config.Config, logger *slog.Logger) (billboard.Catalog, error) {
	c, err := catalog.Open(context.Background(), cfg.Catalog, logger)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalog, "load billboard catalog", err)
	}
	return c, nil
}

func provideGenerator(cfg *config.Config, logger *slog.Logger) *forecast.Generator {
	loc := cfg.Forecast.Location()
	logger.Info("forecast calendar configured", "timezone", loc.String(), "history_days", cfg.Forecast.HistoryDays)
	return forecast.NewGenerator(forecast.WithLocation(loc))
}

func provideRecorder(cfg *config.Config) *metrics.Recorder {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.NewRecorder(cfg.Metrics.Namespace)
}

func provideLookupStore(cfg *config.Config, logger *slog.Logger, resources *bootstrap.Resources) billboard.LookupStore {
	valkeyCfg := cfg.Lookups.Valkey
	if valkeyCfg.Enabled {
		opt, err := buildValkeyOptions(valkeyCfg.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return lookupstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return lookupstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("lookup valkey store enabled", "addr", valkeyCfg.Addr)
			resources.Add(client.Close)
			return lookupstore.NewValkeyStore(client, valkeyCfg.Prefix)
		}
	}
	return lookupstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
