package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solar-system-server/internal/shared/config"
	"solar-system-server/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rl := NewRateLimiter(ctx, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 2}, logger.Discard())
	handler := rl.Middleware(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/planets/", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			assert.Contains(t, rec.Body.String(), `"error":true`)
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/planets/", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	handler.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(context.Background(), config.RateLimitConfig{Enabled: false, RequestsPerSecond: 0.001, BurstSize: 1}, logger.Discard())
	handler := rl.Middleware(okHandler)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(context.Background(), config.RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5}, logger.Discard())
	rl.getLimiter("10.0.0.1").Allow()

	assert.Equal(t, 0, rl.forgetIdle(time.Now()))
	assert.Equal(t, 1, rl.forgetIdle(time.Now().Add(time.Minute)))
	assert.Empty(t, rl.clients)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		expected   string
	}{
		{"remote addr", false, nil, "192.0.2.1"},
		{"ignores proxy headers", false, map[string]string{"X-Forwarded-For": "203.0.113.7"}, "192.0.2.1"},
		{"forwarded chain", true, map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"real ip", true, map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req, tt.trustProxy))
		})
	}
}

func TestCORSAllowsFrontendOrigin(t *testing.T) {
	c := NewCORS(config.FrontendConfig{URL: "http://localhost:3000"}, logger.Discard())
	handler := c.Middleware(okHandler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/planets/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/planets/", nil)
	req.Header.Set("Origin", "http://evil.example")
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightRejectsWrites(t *testing.T) {
	c := NewCORS(config.FrontendConfig{URL: "http://localhost:3000"}, logger.Discard())
	handler := c.Middleware(okHandler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/planets/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHeadersOnRateLimitedResponse(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rl := NewRateLimiter(ctx, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 1}, logger.Discard())
	c := NewCORS(config.FrontendConfig{URL: "http://localhost:3000"}, logger.Discard())
	handler := c.Middleware(rl.Middleware(okHandler))

	send := func(method string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/planets/", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		req.Header.Set("Origin", "http://localhost:3000")
		if method == http.MethodOptions {
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		}
		handler.ServeHTTP(rec, req)
		return rec
	}

	preflight := send(http.MethodOptions)
	assert.Equal(t, http.MethodGet, preflight.Header().Get("Access-Control-Allow-Methods"))

	first := send(http.MethodGet)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "http://localhost:3000", first.Header().Get("Access-Control-Allow-Origin"))

	limited := send(http.MethodGet)
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "http://localhost:3000", limited.Header().Get("Access-Control-Allow-Origin"))
}
