package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"solar-system-server/internal/shared/database"
	"solar-system-server/internal/shared/logger"
	redisclient "solar-system-server/internal/shared/redis"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealth(t *testing.T, withRedis bool) (*HealthHandler, sqlmock.Sqlmock, *miniredis.Miniredis) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db := database.Wrap(sqlDB, logger.Discard())

	if !withRedis {
		return NewHealthHandler(db, nil, logger.Discard()), mock, nil
	}

	mr := miniredis.RunT(t)
	client := &redisclient.Client{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return NewHealthHandler(db, client, logger.Discard()), mock, mr
}

func serveHealth(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/server/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHealthAllConnected(t *testing.T) {
	h, mock, _ := setupHealth(t, true)
	mock.ExpectPing()

	code, resp := serveHealth(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Database)
	assert.Equal(t, "connected", resp.Cache)
}

func TestHealthCacheDisabled(t *testing.T) {
	h, mock, _ := setupHealth(t, false)
	mock.ExpectPing()

	code, resp := serveHealth(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "disabled", resp.Cache)
}

func TestHealthDatabaseDown(t *testing.T) {
	h, mock, mr := setupHealth(t, true)
	mock.ExpectPing().WillReturnError(stderrors.New("connection refused"))
	mr.Close()

	code, resp := serveHealth(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "disconnected", resp.Database)
	assert.Equal(t, "disconnected", resp.Cache)
}
