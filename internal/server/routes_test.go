package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/cache"
	"solar-system-server/internal/shared/config"
	"solar-system-server/internal/shared/database"
	"solar-system-server/internal/shared/logger"
	redisclient "solar-system-server/internal/shared/redis"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMux(t *testing.T) (*http.ServeMux, int) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	mock.ExpectPing()

	mr := miniredis.RunT(t)
	client := &redisclient.Client{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	store := planet.NewMemoryStore()
	earth := planet.CelestialBody{
		Name: planet.EarthName, DisplayOrder: 3, PlanetType: planet.PlanetTypeTerrestrial,
		DistanceFromSunAU: 1.0, DiameterKm: 12756, MassEarthRelative: planet.Mass(1.0),
		OrbitalPeriodDays: 365.25, RotationPeriodHours: 23.93, ColorHex: "#6B93D6",
		HasMoons: true, MoonCount: 1, IsActive: true,
	}
	require.NoError(t, store.Create(context.Background(), &earth))

	responseCache := cache.New(client, config.CacheConfig{ListTTL: time.Minute, KeyPrefix: "test:"}, logger.Discard())
	routes := NewRoutes(
		database.Wrap(sqlDB, logger.Discard()),
		client,
		planet.NewService(store, logger.Discard()),
		responseCache,
		logger.Discard(),
	)
	return routes.Setup(), earth.ID
}

func TestRoutesServeBothSlashForms(t *testing.T) {
	mux, earthID := setupMux(t)
	id := strconv.Itoa(earthID)

	paths := []string{
		"/api/planets/",
		"/api/planets",
		"/api/planets/" + id + "/",
		"/api/planets/" + id,
		"/api/system-info/",
		"/api/system-info",
		"/api/server/health",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRoutesUnknownPlanet(t *testing.T) {
	mux, _ := setupMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/planets/999/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Planet not found", body["message"])
}

func TestRoutesCachePlanetList(t *testing.T) {
	mux, _ := setupMux(t)

	first := httptest.NewRecorder()
	mux.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/planets/", nil))
	second := httptest.NewRecorder()
	mux.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/planets/", nil))

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
