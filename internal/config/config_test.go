package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/taskify")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_SECRET", "s3cret")
}

func TestNewConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, runtime.NumCPU(), cfg.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "postgres://localhost/taskify", cfg.Database.URL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "", cfg.Redis.Password)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.CookieSecure)
}

func TestNewConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "-4")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SESSION_COOKIE_NAME", "sid")
	t.Setenv("SESSION_COOKIE_SECURE", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "pw", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.True(t, cfg.Session.CookieSecure)
}

func TestNewConfigZeroWorkersUsesCPUs(t *testing.T) {
	setRequired(t)
	t.Setenv("WORKER_COUNT", "0")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.WorkerCount)
}

func TestNewConfigErrors(t *testing.T) {
	t.Run("missing required", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("SESSION_SECRET", "")
		_, err := NewConfig()
		require.Error(t, err)
	})

	t.Run("bad redis db", func(t *testing.T) {
		setRequired(t)
		t.Setenv("REDIS_DB", "bad")
		_, err := NewConfig()
		require.Error(t, err)
	})

	t.Run("negative worker count", func(t *testing.T) {
		setRequired(t)
		t.Setenv("WORKER_COUNT", "-1")
		_, err := NewConfig()
		require.Error(t, err)
	})
}
