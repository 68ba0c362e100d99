package worker

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// cronLogger routes robfig/cron's logging through zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func newCronLogger() cronLogger {
	return cronLogger{logger: log.With().Str("component", "cron").Logger()}
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
