package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadConfigFileDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, "app:\n  logLevel: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, int64(10*1024*1024), cfg.App.MaxFileSize)
	assert.Equal(t, 30.0, cfg.Analysis.MinMatchPercentage)
	assert.Equal(t, 5, cfg.Analysis.RecommendationLimit)
	assert.Equal(t, "substring", cfg.Analysis.MatchMode)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Store.TTL)
	assert.Equal(t, "resumatch:report:", cfg.Store.Redis.KeyPrefix)
	assert.True(t, cfg.Store.CircuitBreaker.Enabled)
	assert.NotEmpty(t, cfg.Observability.ServiceInstance)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := writeConfig(t, `
analysis:
  minMatchPercentage: 50
  matchMode: boundary
server:
  port: "9000"
  apiKeys: ["a", "b"]
store:
  ttl: 10m
  redis:
    enabled: true
    addr: redis:6379
`)
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Analysis.MinMatchPercentage)
	assert.Equal(t, "boundary", cfg.Analysis.MatchMode)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.Server.APIKeys)
	assert.Equal(t, 10*time.Minute, cfg.Store.TTL)
	assert.True(t, cfg.Store.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("RESUMATCH_SERVER_PORT", "7070")
	t.Setenv("RESUMATCH_SERVER_APIKEYS", " k1 , ,k2")

	cfg, err := LoadConfigFile(writeConfig(t, "server:\n  port: \"9000\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Server.APIKeys)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "bad match mode",
			body:    "analysis:\n  matchMode: fuzzy\n",
			wantErr: "invalid match mode",
		},
		{
			name:    "threshold out of range",
			body:    "analysis:\n  minMatchPercentage: 120\n",
			wantErr: "minMatchPercentage",
		},
		{
			name:    "watch without file",
			body:    "analysis:\n  watchTaxonomy: true\n",
			wantErr: "watchTaxonomy requires taxonomyFile",
		},
		{
			name:    "default format not supported",
			body:    "app:\n  defaultFormat: html\n",
			wantErr: "invalid default format",
		},
		{
			name:    "redis without address",
			body:    "store:\n  redis:\n    enabled: true\n    addr: \"\"\n",
			wantErr: "redis address is required",
		},
		{
			name:    "rate limit without key",
			body:    "server:\n  rateLimit:\n    enabled: true\n    byIP: false\n    byAPIKey: false\n",
			wantErr: "neither byIP nor byAPIKey",
		},
		{
			name:    "breaker threshold",
			body:    "store:\n  circuitBreaker:\n    failureThreshold: 1.5\n",
			wantErr: "failureThreshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSensitiveEnv(t *testing.T) {
	assert.True(t, sensitiveEnv("RESUMATCH_SERVER_APIKEYS"))
	assert.True(t, sensitiveEnv("RESUMATCH_STORE_REDIS_PASSWORD"))
	assert.False(t, sensitiveEnv("RESUMATCH_SERVER_PORT"))
}
