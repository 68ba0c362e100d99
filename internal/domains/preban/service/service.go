package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/internal/domains/preban/model"
	"reserve/internal/domains/preban/repository"
	"reserve/shared"
	"reserve/shared/cache"
	"reserve/shared/constant"
	"reserve/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheViolationCount = "preban:count"

type PreBan interface {
	Record(ctx context.Context, entry model.PreBanLog) error
	ViolationCount(ctx context.Context, tenant, netID string) (int, error)
}

type serviceImpl struct {
	repo  repository.PreBanLog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PreBanLog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PreBan {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, entry model.PreBanLog) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if entry.NetID == constant.Empty {
		return failure.BadRequestFromString("netId is required to record a violation") //nolint:wrapcheck
	}

	if entry.ID == constant.Empty {
		entry.ID = uuid.NewString()
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("netId", entry.NetID).Msg("failed to record violation")

		return fmt.Errorf("failed to record violation: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheViolationCount, entry.Tenant, entry.NetID)); err != nil {
		log.Error().Err(err).Msg("failed to delete violation count cache")
	}

	return nil
}

// ViolationCount is the cumulative number of recorded violations of a user.
func (s *serviceImpl) ViolationCount(ctx context.Context, tenant, netID string) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViolationCount")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheViolationCount, tenant, netID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, shared.FilterByTenant(tenant, model.FieldNetID, netID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("netId", netID).Msg("failed to count violations")

		return 0, fmt.Errorf("failed to count violations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save violation count to cache")
		}
	}()

	return res, nil
}
