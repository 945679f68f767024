package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efuller/md-forms/internal/config"
)

var keys = []string{
	"MDFORMS_ADDR",
	"MDFORMS_DSN",
	"MDFORMS_DEBUG",
	"MDFORMS_SESSION_LIFETIME",
	"MDFORMS_MIGRATE",
}

// clearEnv unsets the config variables for the duration of the test, including
// anything godotenv writes while the test runs.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range keys {
		prev, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))

		t.Cleanup(func() {
			if ok {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "web:pass@/mdforms?parseTime=true", cfg.DSN)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 12*time.Hour, cfg.SessionLifetime)
	assert.True(t, cfg.Migrate)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 30*time.Minute, cfg.SessionLifetime)
	assert.Equal(t, "web:pass@/mdforms?parseTime=true", cfg.DSN)
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Setenv("MDFORMS_ADDR", ":9000"))

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.True(t, cfg.Debug)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("testdata/.env.missing")
	assert.Error(t, err)
}

func TestLoadInvalidValue(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("testdata/.env.broken")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
