package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/billboard-insights/internal/bootstrap"
	"github.com/yanqian/billboard-insights/internal/infra/config"
	"github.com/yanqian/billboard-insights/internal/infra/lookupstore"
)

func TestBuildValkeyOptions(t *testing.T) {
	opt, err := buildValkeyOptions("localhost:6379")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = buildValkeyOptions("redis://cache:6380/2")
	require.NoError(t, err)
	require.Equal(t, []string{"cache:6380"}, opt.InitAddress)
	require.Equal(t, 2, opt.SelectDB)
}

func TestProvideLookupStoreDefaultsToMemory(t *testing.T) {
	store := provideLookupStore(&config.Config{}, discardLogger(), bootstrap.NewResources())
	require.IsType(t, &lookupstore.MemoryStore{}, store)
}

func TestProvideRecorder(t *testing.T) {
	require.Nil(t, provideRecorder(&config.Config{}))
	require.NotNil(t, provideRecorder(&config.Config{Metrics: config.MetricsConfig{Enabled: true}}))
}

func TestProvideBillboardConfig(t *testing.T) {
	cfg := &config.Config{
		Forecast:  config.ForecastConfig{HistoryDays: 30},
		Billboard: config.BillboardConfig{TrendingLimit: 3},
	}
	got := provideBillboardConfig(cfg)
	require.Equal(t, 30, got.HistoryDays)
	require.Equal(t, 3, got.TrendingLimit)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
