package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"solar-system-server/internal/shared/database"
	redisclient "solar-system-server/internal/shared/redis"
	"solar-system-server/internal/shared/response"
)

const pingTimeout = 2 * time.Second

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}

type HealthHandler struct {
	db     *database.DB
	redis  *redisclient.Client
	logger *slog.Logger
}

// NewHealthHandler accepts a nil redis client when caching is disabled
func NewHealthHandler(db *database.DB, redis *redisclient.Client, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, logger: logger.With("handler", "health")}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status := http.StatusOK
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  "connected",
		Cache:     "disabled",
	}

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Database ping failed", "error", err)
		resp.Database = "disconnected"
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	if h.redis != nil {
		resp.Cache = "connected"
		if !h.redis.Healthy(ctx) {
			h.logger.Warn("Redis ping failed")
			resp.Cache = "disconnected"
		}
	}

	response.Success(w, status, resp)
}
