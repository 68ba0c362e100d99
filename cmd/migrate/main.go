package main

import (
	"reserve/config"
	"reserve/helper"
	"reserve/shared/logger"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

type upCmd struct{}

func (upCmd) Run(cfg *config.Config) error { return helper.Migrate(cfg, helper.ActionUp, 0) }

type downCmd struct{}

func (downCmd) Run(cfg *config.Config) error { return helper.Migrate(cfg, helper.ActionDown, 0) }

type stepCmd struct {
	N int `arg:"" default:"1" help:"Number of migrations to apply, negative to roll back."`
}

func (c stepCmd) Run(cfg *config.Config) error { return helper.Migrate(cfg, helper.ActionStep, c.N) }

type dropCmd struct{}

func (dropCmd) Run(cfg *config.Config) error { return helper.Migrate(cfg, helper.ActionDrop, 0) }

type versionCmd struct{}

func (versionCmd) Run(cfg *config.Config) error { return helper.Migrate(cfg, helper.ActionVersion, 0) }

var cli struct {
	Up      upCmd      `cmd:"" help:"Apply all pending migrations."`
	Down    downCmd    `cmd:"" help:"Roll back the latest migration."`
	Step    stepCmd    `cmd:"" help:"Apply or roll back N migrations."`
	Drop    dropCmd    `cmd:"" help:"Roll back every migration."`
	Version versionCmd `cmd:"" help:"Print the current migration version."`
}

func main() {
	cfg := config.Get()

	logger.Init(cfg)

	kctx := kong.Parse(&cli,
		kong.Name("migrate"),
		kong.Description("Database migrations for the booking service."),
		kong.UsageOnError(),
		kong.Bind(cfg),
	)

	if err := kctx.Run(); err != nil {
		log.Fatal().Err(err).Str("command", kctx.Command()).Msg("migration failed")
	}
}
