package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmaster-api/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_TYPE", "SESSION_STORE", "USERNAME_SUFFIX", "EMAIL_DOMAIN", "SEED_DATA", "TIMEZONE", "AI_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "cookie", cfg.SessionStore)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, constants.DefaultUsernameSuffix, cfg.UsernameSuffix)
	assert.Equal(t, constants.DefaultEmailDomain, cfg.EmailDomain)
	assert.True(t, cfg.SeedData)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_TYPE", "Postgres")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBType)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_RejectsUnknownSessionStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "memcached")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadTimezone(t *testing.T) {
	t.Setenv("SESSION_STORE", "")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}
