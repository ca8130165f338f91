package handler

import (
	"log/slog"
	"net/http"

	"innkeep/config"
	"innkeep/internal/delivery/http/response"
	"innkeep/internal/infra/persistence/postgres"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler serves the root and health endpoints.
type HealthHandler struct {
	cfg    *config.Config
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db, logger: logger}
}

// Root identifies the service.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": h.cfg.Env.ServiceName,
		"status":  "ok",
	}, "Service is running")
}

// Health is the liveness probe.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// HealthDB is the readiness probe; it pings both database schemas.
func (h *HealthHandler) HealthDB(c echo.Context) error {
	if err := postgres.PingAll(c.Request().Context(), h.db); err != nil {
		// The raw driver error stays in the log; callers only learn the
		// database is down.
		h.logger.ErrorContext(c.Request().Context(), "database ping failed",
			slog.String("error", err.Error()))

		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE",
			"Database is not reachable", "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"database": "ok"}, "Database is healthy")
}
