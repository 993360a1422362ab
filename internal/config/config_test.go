package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sonuudigital/microservices/catalog-service/internal/config"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingEnvFile = "does-not-exist.env"

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "EVENTS_EXCHANGE", "CACHE_TTL", "SHUTDOWN_TIMEOUT", "RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST")
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog")

	cfg, err := config.Load(logs.NewSlogLogger(), missingEnvFile)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "catalog_events", cfg.EventsExchange)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 20, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")

	_, err := config.Load(logs.NewSlogLogger(), missingEnvFile)
	assert.Error(t, err)
}

func TestLoadFromEnvFile(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "PORT", "CACHE_TTL")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=postgres://db/catalog\nPORT=9090\nCACHE_TTL=30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(logs.NewSlogLogger(), path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db/catalog", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadRateLimitNeedsRedis(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("REDIS_URL", "")

	_, err := config.Load(logs.NewSlogLogger(), missingEnvFile)
	assert.Error(t, err)
}
