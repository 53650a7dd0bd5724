package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/billboard-insights/internal/infra/config"
	"github.com/yanqian/billboard-insights/pkg/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, recorder *metrics.Recorder, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	log := logger.With("component", "http.router")
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(log),
		metricsMiddleware(recorder),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		errorHandlingMiddleware(log),
		rateLimitMiddleware(cfg.HTTP.RateLimit, log),
	)

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Health)
	if cfg.Metrics.Enabled && recorder != nil {
		router.GET("/metrics", gin.WrapH(recorder.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/billboards", handler.ListBillboards)
		api.GET("/billboards/trending", handler.Trending)
		api.GET("/predict/:billboard_id", handler.Predict)
	}
	router.NoRoute(handler.NotFound)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds(), "request_id", c.GetString(requestIDKey))
	}
}

func metricsMiddleware(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		recorder.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
