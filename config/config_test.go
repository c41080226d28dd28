package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func setRequired(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/carepulse")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("BEARER_TOKEN", "secret")
	t.Setenv("SYMMETRIC_KEY", testKey)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_USER", "clinic@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8930, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 15.0, cfg.RequestsPerSecond)
	assert.Equal(t, 30, cfg.Burst)
	assert.Equal(t, 30*time.Second, cfg.SubmissionLockTTL)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, "clinic@example.com", cfg.SMTP.From)
	assert.Equal(t, "secret", cfg.GetBearerToken())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("BEARER_TOKEN", "secret")
	t.Setenv("SYMMETRIC_KEY", testKey)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsShortKey(t *testing.T) {
	setRequired(t)
	t.Setenv("SYMMETRIC_KEY", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}
