package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"dualzone/config"
	"dualzone/shared/timezone"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// New connects to Postgres with the session timezone pinned to the storage zone, so
// timestamps without a zone are read and written the way the application stores them.
// Later SetStorage calls do not reach connections that are already open.
// Without a configured host no connection is made and nil is returned.
func New(cfg *config.Config, tz *timezone.Context) *sqlx.DB {
	pg := cfg.DB.Postgres
	if pg.Host == "" {
		log.Info().Msg("No database configured")

		return nil
	}

	return CreatePostgresConnection(DSN(cfg, tz.Storage()), pg.Host, pg.Port, pg.Name, pg.MaxRetry, pg.RetryWaitTime)
}

// DSN builds the connection string for cfg with loc as the session timezone.
func DSN(cfg *config.Config, loc *time.Location) string {
	pg := cfg.DB.Postgres

	query := url.Values{}
	query.Set("sslmode", pg.SSLMode)
	query.Set("timezone", SessionTimezone(loc))

	descriptor := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Username, pg.Password),
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     "/" + pg.Name,
		RawQuery: query.Encode(),
	}

	return descriptor.String()
}

// SessionTimezone renders loc for Postgres' TimeZone setting. IANA zones keep their name;
// fixed offsets use POSIX notation, where the sign is inverted.
func SessionTimezone(loc *time.Location) string {
	name := loc.String()
	if _, err := time.LoadLocation(name); err == nil {
		return name
	}

	_, offset := time.Now().In(loc).Zone()

	return "UTC" + timezone.FormatOffset(-offset)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(descriptor, host, port, dbName string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Error().Str("host", host).Msgf("Giving up on database after %d attempts", maxRetry)

	return nil
}
