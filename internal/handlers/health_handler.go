package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	RootMessage        = "Restaurant Admin API is running"
	HealthyMessage     = "Healthy"
	UnavailableMessage = "Unhealthy: database unreachable"

	healthCheckTimeout = 2 * time.Second
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the liveness and health endpoints
type HealthCheckHandler struct {
	db Pinger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// Root reports that the process is serving requests
// @Summary Liveness
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Restaurant Admin API is running"
// @Router / [get]
func (h *HealthCheckHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}

// HealthCheck pings the database
// @Summary Health check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Healthy"
// @Failure 503 {string} string "Unhealthy: database unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db == nil {
		return c.String(http.StatusOK, HealthyMessage)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed",
			"trace_id", getTraceID(c),
			"error", err.Error(),
		)
		return c.String(http.StatusServiceUnavailable, UnavailableMessage)
	}

	return c.String(http.StatusOK, HealthyMessage)
}
