package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualzone/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, "X-Timezone", cfg.App.TimezoneHeader)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.StorageZone())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Europe/Brussels")
	t.Setenv("APP_STORAGE_TIMEZONE", "UTC")
	t.Setenv("SERVER_SHUTDOWN_GRACE_PERIOD_SECONDS", "5")
	t.Setenv("DB_POSTGRES_HOST", "db.internal")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Brussels", cfg.App.Timezone)
	assert.Equal(t, "UTC", cfg.StorageZone())
	assert.Equal(t, int64(5), cfg.Server.Shutdown.GracePeriodSeconds)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Host)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TIMEZONE=Asia/Jakarta\n"), 0o600))

	t.Cleanup(func() {
		_ = os.Unsetenv("APP_TIMEZONE")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Jakarta", cfg.App.Timezone)
	assert.Equal(t, "Asia/Jakarta", cfg.StorageZone())
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DB_POSTGRES_MAX_RETRY", "many")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
