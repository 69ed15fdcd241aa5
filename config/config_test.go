package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func baseConfig() Config {
	return Config{
		ServerAddr:      defaultServerAddress,
		BackendAddr:     defaultBackendAddress,
		RefreshInterval: defaultRefreshInterval,
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     defaultMaxPageSize,
		LogLevel:        defaultLogLevel,
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("BACKEND_ADDRESS", "http://backend:8181")
	t.Setenv("BACKEND_TOKEN", "secret")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("LOG_LEVEL", "info")

	cfg := baseConfig()
	applyEnv(&cfg)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "http://backend:8181", cfg.BackendAddr)
	assert.Equal(t, "secret", cfg.BackendToken)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestApplyEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "soon")
	t.Setenv("PAGE_SIZE", "lots")
	t.Setenv("MAX_PAGE_SIZE", "-1")

	cfg := baseConfig()
	applyEnv(&cfg)

	assert.Equal(t, defaultRefreshInterval, cfg.RefreshInterval)
	assert.Equal(t, defaultPageSize, cfg.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.MaxPageSize)
}
