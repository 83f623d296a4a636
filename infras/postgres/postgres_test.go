package postgres_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualzone/config"
	"dualzone/infras/postgres"
	"dualzone/shared/timezone"
)

func TestSessionTimezone(t *testing.T) {
	brussels, err := timezone.Parse("Europe/Brussels")
	require.NoError(t, err)

	east, err := timezone.Parse("+05:30")
	require.NoError(t, err)

	west, err := timezone.Resolve(timezone.Offset(-3))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Brussels", postgres.SessionTimezone(brussels))
	assert.Equal(t, "UTC", postgres.SessionTimezone(time.UTC))
	assert.Equal(t, "UTC-05:30", postgres.SessionTimezone(east))
	assert.Equal(t, "UTC+03:00", postgres.SessionTimezone(west))

	india, err := timezone.Resolve(timezone.Offset(5.5))
	require.NoError(t, err)
	assert.Equal(t, "UTC-05:30", postgres.SessionTimezone(india))

	odd, err := timezone.Resolve(timezone.Zone(time.FixedZone("odd", 90)))
	require.NoError(t, err)
	assert.Equal(t, "UTC-00:01:30", postgres.SessionTimezone(odd))
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Host = "db.internal"
	cfg.DB.Postgres.Port = "5432"
	cfg.DB.Postgres.Username = "app"
	cfg.DB.Postgres.Password = "p@ss word"
	cfg.DB.Postgres.Name = "zones"
	cfg.DB.Postgres.SSLMode = "disable"

	loc, err := timezone.Parse("America/New_York")
	require.NoError(t, err)

	parsed, err := url.Parse(postgres.DSN(cfg, loc))
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/zones", parsed.Path)
	assert.Equal(t, "app", parsed.User.Username())
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "America/New_York", parsed.Query().Get("timezone"))
}

func TestNewWithoutHost(t *testing.T) {
	tz, err := timezone.New("UTC")
	require.NoError(t, err)

	assert.Nil(t, postgres.New(&config.Config{}, tz))
}
