package worker

import (
	"context"
	"fmt"
	"time"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/internal/domains/booking/service"
	"reserve/shared/constant"
	"reserve/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const sweepTimeout = 5 * time.Minute

// Sweeper periodically sends noShow to approved bookings that were never checked in.
type Sweeper struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func NewSweeper(service service.Booking, cfg *config.Config, otel otel.Otel) *Sweeper {
	return &Sweeper{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

// RunOnce performs a single sweep and returns how many bookings changed.
func (s *Sweeper) RunOnce(ctx context.Context) (swept int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".RunOnce")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	started := time.Now()

	swept, err = s.service.SweepNoShows(ctx)
	if err != nil {
		return swept, fmt.Errorf("failed to sweep no-shows: %w", err)
	}

	log.Info().Int("swept", swept).Dur("took", time.Since(started)).Msg("no-show sweep finished")

	return swept, nil
}

// Start runs the sweep on the configured schedule until ctx is done.
func (s *Sweeper) Start(ctx context.Context, schedule string) error {
	if schedule == constant.Empty {
		schedule = s.cfg.Booking.NoShow.Schedule
	}

	logger := newCronLogger()

	scheduler := cron.New(
		cron.WithLocation(timezone.GetLocation()),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := scheduler.AddFunc(schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled no-show sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid no-show schedule %q: %w", schedule, err)
	}

	log.Info().Str("schedule", schedule).Msg("no-show sweeper started")

	scheduler.Start()

	<-ctx.Done()

	<-scheduler.Stop().Done()

	log.Info().Msg("no-show sweeper stopped")

	return nil
}
