package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
	apperrors "github.com/yanqian/billboard-insights/pkg/errors"
)

// RootMessage is the plain text liveness banner served on "/".
const RootMessage = "Billboard API is running! Use /api/billboards to get data"

// Handler wires the HTTP transport to the billboard service.
type Handler struct {
	svc    billboard.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc billboard.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

type listResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type predictResponse struct {
	Success bool `json:"success"`
	billboard.Prediction
}

// Root answers the liveness banner.
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// Health is a JSON probe for orchestrators.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListBillboards returns the full catalog.
func (h *Handler) ListBillboards(c *gin.Context) {
	c.JSON(http.StatusOK, listResponse{Success: true, Data: h.svc.List(c.Request.Context())})
}

// Trending returns the billboards with the most prediction lookups.
func (h *Handler) Trending(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, "limit must be a non-negative integer", err))
			return
		}
		limit = parsed
	}

	items, err := h.svc.Trending(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, listResponse{Success: true, Data: items})
}

// Predict synthesizes history and a 7 day forecast for one billboard.
func (h *Handler) Predict(c *gin.Context) {
	prediction, err := h.svc.Predict(c.Request.Context(), c.Param("billboard_id"))
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, predictResponse{Success: true, Prediction: prediction})
}

// NotFound answers unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	abortWithError(c, NewHTTPError(http.StatusNotFound, apperrors.CodeNotFound, "Route not found", nil))
}
