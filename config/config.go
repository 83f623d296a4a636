package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Swagger  bool   `envconfig:"SWAGGER" default:"true"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name            string `envconfig:"NAME" default:"dualzone"`
		Timezone        string `envconfig:"TIMEZONE" default:"UTC"`
		StorageTimezone string `envconfig:"STORAGE_TIMEZONE"`
		TimezoneHeader  string `envconfig:"TIMEZONE_HEADER" default:"X-Timezone"`
		CORS            struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	DB struct {
		Postgres struct {
			MaxRetry      int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime int    `envconfig:"RETRY_WAIT_TIME" default:"1"`
			Host          string `envconfig:"HOST"`
			Port          string `envconfig:"PORT" default:"5432"`
			Username      string `envconfig:"USER"`
			Password      string `envconfig:"PASSWORD"`
			Name          string `envconfig:"NAME"`
			SSLMode       string `envconfig:"SSL_MODE" default:"disable"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// StorageZone returns the storage timezone, falling back to the application timezone.
func (c *Config) StorageZone() string {
	if c.App.StorageTimezone != "" {
		return c.App.StorageTimezone
	}

	return c.App.Timezone
}

var (
	conf        Config
	once        sync.Once
	initialized bool
	initErr     error
)

// Load reads the .env file when present, then the environment, into a new Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "processing environment variables")
	}

	return &cfg, nil
}

func Init() error {
	once.Do(func() {
		var cfg *Config

		cfg, initErr = Load()
		if initErr != nil {
			return
		}

		conf = *cfg
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	return initErr
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
