package main

import (
	"context"
	"os/signal"
	"syscall"

	"reserve/config"
	"reserve/di"
	"reserve/shared/logger"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

type runContext struct {
	ctx context.Context
}

type sweepCmd struct {
	Once     bool   `help:"Run a single sweep and exit."`
	Schedule string `help:"Cron expression overriding BOOKING_NO_SHOW_SCHEDULE." placeholder:"SPEC"`
}

func (c *sweepCmd) Run(rc *runContext) error {
	sweeper := di.InitializeSweeper()

	if c.Once {
		_, err := sweeper.RunOnce(rc.ctx)

		return err
	}

	return sweeper.Start(rc.ctx, c.Schedule)
}

var cli struct {
	Sweep sweepCmd `cmd:"" default:"withargs" help:"Mark approved bookings that were never checked in as no-shows."`
}

func main() {
	cfg := config.Get()

	logger.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Name("worker"),
		kong.Description("Background jobs for the booking service."),
		kong.UsageOnError(),
	)

	if err := kctx.Run(&runContext{ctx: ctx}); err != nil {
		log.Error().Err(err).Str("command", kctx.Command()).Msg("worker command failed")
		stop()
		kctx.Exit(1)
	}
}
