package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresNode addresses one postgres server. A read node without a host reuses the write node.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name          string `envconfig:"APP_NAME"`
		Timezone      string `envconfig:"TIMEZONE"`
		DefaultTenant string `envconfig:"DEFAULT_TENANT" default:"mc"`
		CORS          struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Booking struct {
		// Transition.Mode selects the gateway: "local" runs the machine in process,
		// "remote" posts to Transition.Endpoint.
		Transition struct {
			Mode           string `envconfig:"MODE" default:"local"`
			Endpoint       string `envconfig:"ENDPOINT"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"TRANSITION"`
		Calendar struct {
			Endpoint       string `envconfig:"ENDPOINT"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"CALENDAR"`
		Email struct {
			Topic string `envconfig:"TOPIC" default:"booking-emails"`
		} `envconfig:"EMAIL"`
		Archive struct {
			Enable bool `envconfig:"ENABLE"`
		} `envconfig:"ARCHIVE"`
		NoShow struct {
			Schedule     string `envconfig:"SCHEDULE" default:"@every 15m"`
			GraceMinutes int    `envconfig:"GRACE_MINUTES" default:"30"`
			BatchSize    int    `envconfig:"BATCH_SIZE" default:"100"`
		} `envconfig:"NO_SHOW"`
	} `envconfig:"BOOKING"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
	} `envconfig:"JWT"`

	Kafka struct {
		Brokers             []string `envconfig:"BROKERS"`
		WriteTimeoutSeconds int      `envconfig:"WRITE_TIMEOUT_SECONDS" default:"10"`
		SASL                struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	DB struct {
		Postgres struct {
			MaxRetry       int          `envconfig:"MAX_RETRY" default:"5"`
			RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConns   int          `envconfig:"MAX_OPEN_CONNS" default:"10"`
			MaxIdleConns   int          `envconfig:"MAX_IDLE_CONNS" default:"10"`
			MigrationTable string       `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
			Prefix         string       `envconfig:"PREFIX"`
			Read           PostgresNode `envconfig:"READ"`
			Write          PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			Insecure    bool    `envconfig:"INSECURE" default:"true"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

const (
	transitionModeLocal  = "local"
	transitionModeRemote = "remote"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")

	load = sync.OnceValue(func() *Config {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
		}

		cfg := &Config{}
		if err := envconfig.Process("", cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Service configuration rejected")
		}

		return cfg
	})
)

// Get loads the configuration once per process. Invalid configuration is fatal.
func Get() *Config {
	return load()
}

// Validate reports settings that would only fail later, at the first request that needs them.
func (c *Config) Validate() error {
	var problems []string

	switch c.Booking.Transition.Mode {
	case transitionModeLocal:
	case transitionModeRemote:
		if c.Booking.Transition.Endpoint == "" {
			problems = append(problems, "BOOKING_TRANSITION_ENDPOINT is required in remote mode")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown BOOKING_TRANSITION_MODE %q", c.Booking.Transition.Mode))
	}

	if c.Booking.NoShow.GraceMinutes < 0 {
		problems = append(problems, "BOOKING_NO_SHOW_GRACE_MINUTES must not be negative")
	}

	if c.Booking.NoShow.BatchSize <= 0 {
		problems = append(problems, "BOOKING_NO_SHOW_BATCH_SIZE must be positive")
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		problems = append(problems, "APP_RATE_LIMITER needs a positive MAX_REQUESTS and WINDOW_SECONDS")
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
