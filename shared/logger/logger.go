package logger

import (
	"io"
	"os"
	"time"

	"reserve/config"
	"reserve/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// Init configures the global zerolog logger. Production writes JSON lines, every other environment a
// human readable console.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(ParseLevel(cfg.Server.LogLevel))

	log.Logger = zerolog.New(writer(cfg.Server.Env, os.Stdout)).With().
		Timestamp().
		Str("service", cfg.App.Name).
		Logger()

	log.Debug().Str("level", zerolog.GlobalLevel().String()).Str("env", cfg.Server.Env).Msg("Logger initialized.")
}

func writer(env string, out io.Writer) io.Writer {
	if env == constant.ServerEnvProduction {
		return out
	}

	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(raw)
	if err != nil || raw == "" {
		return defaultLevel
	}

	return level
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
