package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomSetting=MockRoomSettingService

import (
	"context"
	"fmt"

	"reserve/config"
	"reserve/infras/otel"
	"reserve/internal/domains/room/model"
	"reserve/internal/domains/room/model/dto"
	"reserve/internal/domains/room/repository"
	"reserve/shared"
	"reserve/shared/cache"
	"reserve/shared/constant"
	gDto "reserve/shared/dto"
	"reserve/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
	cacheRoomsByIDs = "room:ids"
)

type RoomSetting interface {
	Create(ctx context.Context, req dto.CreateRoomSettingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomSettingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, roomID string) (dto.RoomSettingResponse, error)
	GetByRoomIDs(ctx context.Context, tenant string, roomIDs []string) ([]model.RoomSetting, error)
	Update(ctx context.Context, req dto.UpdateRoomSettingRequest, roomID string) error
	Delete(ctx context.Context, roomID string) error
}

type serviceImpl struct {
	repo  repository.RoomSetting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomSetting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomSetting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomSettingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.ActorFromContext(ctx)
	tenant := shared.TenantFromContext(ctx)

	exist, err := s.repo.Exist(ctx, shared.FilterByTenant(tenant, model.FieldRoomID, req.RoomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room setting existence")

		return fmt.Errorf("failed to check room setting existence: %w", err)
	}

	if exist {
		return failure.Conflict("room setting already exists") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(tenant, user)); err != nil {
		return err //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, tenant)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tenant := shared.TenantFromContext(ctx)
	filter = withTenant(tenant, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllRoom, tenant), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room settings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room settings")

		return res, fmt.Errorf("failed to count room settings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room settings")

		return res, fmt.Errorf("failed to get room settings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tenant := shared.TenantFromContext(ctx)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheCountRoom, tenant), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room setting count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room settings")

		return res, fmt.Errorf("failed to count room settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room setting count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomID string) (res dto.RoomSettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tenant := shared.TenantFromContext(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetRoom, tenant, roomID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room setting")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByTenant(tenant, model.FieldRoomID, roomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room setting")

		return res, fmt.Errorf("failed to get room setting: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room setting not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room setting to cache")
		}
	}()

	return res, nil
}

// GetByRoomIDs loads the settings of the selected rooms. Rooms without a setting row are omitted.
func (s *serviceImpl) GetByRoomIDs(ctx context.Context, tenant string, roomIDs []string) (res []model.RoomSetting, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoomIDs")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(roomIDs) == 0 {
		return []model.RoomSetting{}, nil
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheRoomsByIDs, tenant), gDto.QueryParams{}, repository.ByRoomIDs(tenant, roomIDs))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetByRoomIDs(ctx, tenant, roomIDs)
	if err != nil {
		log.Error().Err(err).Strs("roomIds", roomIDs).Msg("failed to get room settings by ids")

		return nil, fmt.Errorf("failed to get room settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room settings by ids to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomSettingRequest, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.ActorFromContext(ctx)
	tenant := shared.TenantFromContext(ctx)
	filter := shared.FilterByTenant(tenant, model.FieldRoomID, roomID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room setting existence")

		return fmt.Errorf("failed to check room setting existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room setting not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.Fields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room setting")

		return fmt.Errorf("failed to update room setting: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, tenant, roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room setting cache")
		}

		s.invalidate(c, tenant)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tenant := shared.TenantFromContext(ctx)
	filter := shared.FilterByTenant(tenant, model.FieldRoomID, roomID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room setting exists")

		return fmt.Errorf("failed to check if room setting exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room setting not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room setting")

		return fmt.Errorf("failed to delete room setting: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, tenant, roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room setting from cache")
		}

		s.invalidate(c, tenant)
	}()

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, tenant string) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAllRoom, tenant))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheCountRoom, tenant))
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheRoomsByIDs, tenant))
}

func withTenant(tenant string, filter gDto.FilterGroup) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenant, Value: tenant, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			filter,
		},
	}
}
