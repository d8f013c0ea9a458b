package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "http://ip-api.com", cfg.Geo.BaseURL)
	assert.Equal(t, "8.8.8.8", cfg.Geo.DevIP)
	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
	assert.Equal(t, int64(1024), cfg.Queue.Buffer)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("ENV", "development")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("GEO_RETRIES", "5")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5433/links?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, uint64(5), cfg.Geo.Retries)
	assert.Equal(t, "db:5433", cfg.Psql.Addr.Host)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
