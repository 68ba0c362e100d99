package main

import (
	"reserve/config"
	"reserve/di"
	"reserve/helper"
	"reserve/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Reserve Booking API
// @version 1.0
// @description Room reservation lifecycle: submission, approval, check-in and the services attached to a booking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Migrate(cfg, helper.ActionUp, 0); err != nil {
			log.Fatal().Err(err).Msg("Automatic migration failed")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
