package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pasar/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "",
		"PORT":              "",
		"REDIS_URL":         "",
		"CATALOG_CACHE_TTL": "",
		"WRITE_RATE_MAX":    "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	require.Equal(t, 60, cfg.WriteRateMax)
	require.Equal(t, time.Minute, cfg.WriteRateWindow)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":              "production",
		"PORT":                 "9090",
		"REDIS_URL":            "redis://localhost:6379/0",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
		"CATALOG_CACHE_TTL":    "30s",
		"WRITE_RATE_MAX":       "5",
		"WRITE_RATE_WINDOW":    "10s",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
	require.Equal(t, 5, cfg.WriteRateMax)
	require.Equal(t, 10*time.Second, cfg.WriteRateWindow)
}

func TestLoadFallsBackOnBadDuration(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CATALOG_CACHE_TTL": "not-a-duration",
	})
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
}
