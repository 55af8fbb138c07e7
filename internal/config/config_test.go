package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "user-auth-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "session_id", cfg.Auth.SessionCookieName)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("AUTH_BCRYPT_COST", "10")
	t.Setenv("AUTH_SESSION_COOKIE_NAME", "sid")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "sid", cfg.Auth.SessionCookieName)
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "oops")

	_, err := Load()
	assert.Error(t, err)
}
