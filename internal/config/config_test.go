package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "CORS_ALLOWED_ORIGINS", "JWT_SECRET", "JWT_ISSUER",
		"SESSION_TTL_MINUTES", "SESSION_BACKEND", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "LOGO_URL_TTL_MINUTES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, "techjobbkk", cfg.JWTIssuer)
	assert.Equal(t, 60*time.Minute, cfg.SessionTTL)
	assert.Equal(t, SessionJWT, cfg.SessionBackend)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.LogoURLTTL)
	assert.False(t, cfg.MediaEnabled())
	assert.False(t, cfg.InMemory())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "memory")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("S3_BUCKET", "logos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddress())
	assert.Equal(t, SessionRedis, cfg.SessionBackend)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.MediaEnabled())
	assert.True(t, cfg.InMemory())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.EqualError(t, err, "DATABASE_URL is required")

	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	_, err = Load()
	assert.EqualError(t, err, "JWT_SECRET is required")

	t.Setenv("SESSION_BACKEND", "cookie")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_BACKEND")
}

func TestMinutes_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, 60*time.Minute, minutes("zero", 60))
	assert.Equal(t, 60*time.Minute, minutes("-3", 60))
	assert.Equal(t, 2*time.Minute, minutes(" 2 ", 60))
}
