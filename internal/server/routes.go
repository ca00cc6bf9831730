package server

import (
	"log/slog"
	"net/http"

	"solar-system-server/internal/planet"
	planetHandlers "solar-system-server/internal/planet/handlers"
	serverHandlers "solar-system-server/internal/server/handlers"
	"solar-system-server/internal/shared/cache"
	"solar-system-server/internal/shared/database"
	redisclient "solar-system-server/internal/shared/redis"
)

type Routes struct {
	db            *database.DB
	redis         *redisclient.Client
	planetService *planet.Service
	responseCache *cache.ResponseCache
	logger        *slog.Logger
}

func NewRoutes(db *database.DB, redis *redisclient.Client, planetService *planet.Service, responseCache *cache.ResponseCache, logger *slog.Logger) *Routes {
	return &Routes{
		db:            db,
		redis:         redis,
		planetService: planetService,
		responseCache: responseCache,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.redis, r.logger)
	planetHandler := planetHandlers.NewPlanetHandler(r.planetService, r.logger)

	list := r.responseCache.Middleware(http.HandlerFunc(planetHandler.List))
	detail := http.HandlerFunc(planetHandler.Detail)
	systemInfo := r.responseCache.Middleware(http.HandlerFunc(planetHandler.SystemInfo))

	mux.Handle("/api/server/health", healthHandler)

	// Both trailing-slash and bare forms are served
	mux.Handle("/api/planets/{$}", list)
	mux.Handle("/api/planets", list)
	mux.Handle("/api/planets/{id}/{$}", detail)
	mux.Handle("/api/planets/{id}", detail)
	mux.Handle("/api/system-info/{$}", systemInfo)
	mux.Handle("/api/system-info", systemInfo)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/planets/", "/api/planets/{id}/", "/api/system-info/"},
	)

	return mux
}
