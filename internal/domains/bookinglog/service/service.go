package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=BookingLog=MockBookingLogService

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/internal/domains/bookinglog/model"
	"reserve/internal/domains/bookinglog/repository"
	"reserve/shared"
	"reserve/shared/cache"
	"reserve/shared/constant"
	gDto "reserve/shared/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheHistory = "bookinglog:history"
	cacheByEvent = "bookinglog:event"
)

type BookingLog interface {
	Append(ctx context.Context, logs ...model.BookingLog) error
	ListByCalendarEvent(ctx context.Context, tenant, calendarEventID string) ([]model.BookingLog, error)
	History(ctx context.Context, tenant string, requestNumber int64) ([]model.BookingLog, error)
}

type serviceImpl struct {
	repo  repository.BookingLog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BookingLog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BookingLog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Append writes the rows in order. It is the only write path of the log.
func (s *serviceImpl) Append(ctx context.Context, logs ...model.BookingLog) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Append")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(logs) == 0 {
		return nil
	}

	for i := range logs {
		if logs[i].ID == constant.Empty {
			logs[i].ID = uuid.NewString()
		}
	}

	if len(logs) == 1 {
		err = s.repo.Insert(ctx, logs[0])
	} else {
		err = s.repo.InsertBulk(ctx, logs)
	}

	if err != nil {
		log.Error().Err(err).Str("calendarEventId", logs[0].CalendarEventID).Msg("failed to append booking logs")

		return fmt.Errorf("failed to append booking logs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)
		first := logs[0]

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheHistory, first.Tenant))

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheByEvent, first.Tenant, first.CalendarEventID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking log cache")
		}
	}()

	return nil
}

func (s *serviceImpl) ListByCalendarEvent(ctx context.Context, tenant, calendarEventID string) (res []model.BookingLog, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCalendarEvent")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheByEvent, tenant, calendarEventID)

	return s.list(ctx, cacheKey, shared.FilterByTenant(tenant, model.FieldCalendarEventID, calendarEventID, model.TableName))
}

// History returns the log of a request sorted by change time, oldest first.
func (s *serviceImpl) History(ctx context.Context, tenant string, requestNumber int64) (res []model.BookingLog, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheHistory, tenant, strconv.FormatInt(requestNumber, 10))

	return s.list(ctx, cacheKey, shared.FilterByTenant(tenant, model.FieldRequestNumber, requestNumber, model.TableName))
}

func (s *serviceImpl) list(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res []model.BookingLog, err error) {
	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking logs")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldChangedAt, SortDir: gDto.SortDirAsc}

	res, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking logs")

		return nil, fmt.Errorf("failed to get booking logs: %w", err)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].ChangedAt.Before(res[j].ChangedAt)
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking logs to cache")
		}
	}()

	return res, nil
}
