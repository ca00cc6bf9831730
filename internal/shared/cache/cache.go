package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"solar-system-server/internal/shared/config"
	redisclient "solar-system-server/internal/shared/redis"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores successful GET responses in Redis for a fixed TTL.
// A nil Redis client turns every operation into a no-op.
type ResponseCache struct {
	client *redisclient.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

type entry struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func New(client *redisclient.Client, cfg config.CacheConfig, logger *slog.Logger) *ResponseCache {
	return &ResponseCache{
		client: client,
		ttl:    cfg.ListTTL,
		prefix: cfg.KeyPrefix,
		logger: logger.With("component", "response_cache"),
	}
}

func (c *ResponseCache) enabled() bool {
	return c != nil && c.client != nil && c.client.Client != nil
}

func (c *ResponseCache) key(r *http.Request) string {
	return c.prefix + r.URL.RequestURI()
}

// Middleware serves cached bodies on hit and records 200 responses on miss
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.enabled() || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := c.key(r)
		logger := c.logger.With("operation", "serve", "key", key)

		if cached, ok := c.lookup(ctx, key, logger); ok {
			w.Header().Set("Content-Type", cached.ContentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached.Body)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status != http.StatusOK {
			return
		}

		c.store(ctx, key, entry{ContentType: w.Header().Get("Content-Type"), Body: rec.body.Bytes()}, logger)
	})
}

func (c *ResponseCache) lookup(ctx context.Context, key string, logger *slog.Logger) (*entry, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Cache lookup failed, serving uncached", "error", err)
		return nil, false
	}

	var cached entry
	if err := json.Unmarshal(raw, &cached); err != nil {
		logger.Warn("Discarding unreadable cache entry", "error", err)
		return nil, false
	}

	logger.Debug("Cache hit")
	return &cached, true
}

func (c *ResponseCache) store(ctx context.Context, key string, e entry, logger *slog.Logger) {
	raw, err := json.Marshal(e)
	if err != nil {
		logger.Warn("Failed to encode cache entry", "error", err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn("Failed to store cache entry", "error", err)
		return
	}

	logger.Debug("Response cached", "ttl", c.ttl, "size_bytes", len(e.Body))
}

// Purge drops every cached response under the configured prefix and returns how many were removed
func (c *ResponseCache) Purge(ctx context.Context) (int, error) {
	if !c.enabled() {
		return 0, nil
	}

	logger := c.logger.With("operation", "purge")

	var removed int
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Error("Failed to delete cache entry", "key", iter.Val(), "error", err)
			return removed, err
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		logger.Error("Failed to scan cache entries", "error", err)
		return removed, err
	}

	logger.Info("Response cache purged", "removed", removed)
	return removed, nil
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
