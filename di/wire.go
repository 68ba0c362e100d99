//go:build wireinject
// +build wireinject

package di

import (
	"reserve/config"
	"reserve/infras/calendar"
	"reserve/infras/jwt"
	"reserve/infras/kafka"
	"reserve/infras/mailer"
	"reserve/infras/otel"
	"reserve/infras/postgres"
	"reserve/infras/redis"
	"reserve/infras/s3"
	"reserve/internal/domains/booking/fallback"
	"reserve/internal/domains/booking/gateway"
	"reserve/internal/domains/booking/machine"
	"reserve/internal/domains/booking/messages"
	"reserve/internal/domains/booking/sideeffect"
	"reserve/internal/worker"
	"reserve/permissions"
	"reserve/shared/cache"
	"reserve/transport/http"
	"reserve/transport/http/middleware"
	"reserve/transport/http/router"

	bookingRepository "reserve/internal/domains/booking/repository"
	bookingService "reserve/internal/domains/booking/service"
	bookingLogRepository "reserve/internal/domains/bookinglog/repository"
	bookingLogService "reserve/internal/domains/bookinglog/service"
	preBanRepository "reserve/internal/domains/preban/repository"
	preBanService "reserve/internal/domains/preban/service"
	roomRepository "reserve/internal/domains/room/repository"
	roomService "reserve/internal/domains/room/service"
	bookingHandler "reserve/internal/handlers/booking"
	roomHandler "reserve/internal/handlers/room"
	xstateHandler "reserve/internal/handlers/xstate"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mailer.New,
	s3.New,
	calendar.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingLogDomain = wire.NewSet(
	bookingLogRepository.New,
	bookingLogService.New,
)

var preBanDomain = wire.NewSet(
	preBanRepository.New,
	preBanService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	machine.New,
	messages.Get,
	gateway.New,
	fallback.New,
	sideeffect.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingLogDomain,
	preBanDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	xstateHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSweeper() *worker.Sweeper {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		worker.NewSweeper,
	)

	return &worker.Sweeper{}
}
