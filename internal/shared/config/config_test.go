package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Cache.ListTTL)
	assert.Equal(t, "2.0", cfg.Seed.CommandVersion)
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("CACHE_LIST_TTL_MINUTES", "5")
	t.Setenv("REDIS_ENABLED", "false")

	cfg := FromEnv()

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Logging.JSONFormat)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ListTTL)
	assert.Contains(t, cfg.ConnectionString(), "dbname=catalog")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }, "SERVER_PORT"},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "DB_HOST"},
		{"missing db name", func(c *Config) { c.Database.Name = "" }, "DB_NAME"},
		{"zero rate", func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, "RATE_LIMIT"},
		{"zero ttl", func(c *Config) { c.Cache.ListTTL = 0 }, "CACHE_LIST_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
