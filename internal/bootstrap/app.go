package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yanqian/billboard-insights/internal/infra/config"
)

const shutdownTimeout = 10 * time.Second

// Closer releases a backend connection when the app stops.
type Closer func()

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	closers []Closer
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, resources *Resources) *App {
	app := &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
	if resources != nil {
		app.closers = resources.closers
	}
	return app
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	defer a.release()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http server starting", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) release() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Resources collects backend handles opened while wiring so Run can close them.
type Resources struct {
	closers []Closer
}

// NewResources returns an empty resource set.
func NewResources() *Resources {
	return &Resources{}
}

// Add registers a release function; nil is ignored.
func (r *Resources) Add(c Closer) {
	if r == nil || c == nil {
		return
	}
	r.closers = append(r.closers, c)
}
