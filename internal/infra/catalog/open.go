package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/billboard-insights/internal/infra/config"
)

const postgresTimeout = 5 * time.Second

// Open picks the catalog source from configuration: Postgres when a DSN is set,
// then a YAML file, then the embedded table. A Postgres failure falls back with a log line.
func Open(ctx context.Context, cfg config.CatalogConfig, logger *slog.Logger) (*MemoryCatalog, error) {
	if dsn := strings.TrimSpace(cfg.Postgres.DSN); dsn != "" {
		c, err := openPostgres(ctx, dsn, cfg.Postgres)
		if err == nil {
			logger.Info("billboard catalog loaded from postgres", "billboards", c.Len())
			return c, nil
		}
		logger.Error("postgres catalog unavailable, falling back", "error", err)
	}
	if path := strings.TrimSpace(cfg.Path); path != "" {
		c, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("billboard catalog loaded from file", "path", path, "billboards", c.Len())
		return c, nil
	}
	c, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	logger.Info("billboard catalog loaded from embedded table", "billboards", c.Len())
	return c, nil
}

func openPostgres(ctx context.Context, dsn string, cfg config.PostgresConfig) (*MemoryCatalog, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	ctx, cancel := context.WithTimeout(ctx, postgresTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	// The catalog is frozen after load, so the pool is not kept.
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return LoadPostgres(ctx, pool)
}
