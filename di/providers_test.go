package di_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualzone/config"
	"dualzone/di"
	"dualzone/shared/timezone"
)

func TestProvideTimezone(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Europe/Brussels"

	tz, err := di.ProvideTimezone(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Brussels", tz.Current().String())
	assert.Equal(t, "Europe/Brussels", tz.Storage().String())

	cfg.App.StorageTimezone = "UTC"

	tz, err = di.ProvideTimezone(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Brussels", tz.Current().String())
	assert.Equal(t, "UTC", tz.Storage().String())
}

func TestProvideTimezoneInvalid(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "UTC"
	cfg.App.StorageTimezone = "Not/AZone"

	_, err := di.ProvideTimezone(cfg)
	assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)

	cfg.App.Timezone = ""

	_, err = di.ProvideTimezone(cfg)
	assert.ErrorIs(t, err, timezone.ErrInvalidTimezone)
}
