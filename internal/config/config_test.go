package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Contains(t, cfg.DBDSN, "clientFoundRows=true")
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 2, cfg.JobWorkers)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("DB_QUERY_TIMEOUT", "250ms")
	t.Setenv("JOB_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppAddr)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 250*time.Millisecond, cfg.QueryTimeout)
	assert.Equal(t, 8, cfg.JobWorkers)
}

func TestLoad_ParsesCORSOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_IgnoresBadNumericValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JOB_WORKERS", "many")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.JobWorkers)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
}
