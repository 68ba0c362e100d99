package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"reserve/infras/otel"
	"reserve/infras/postgres"
	"reserve/internal/domains/room/model"
	"reserve/shared/constant"
	gDto "reserve/shared/dto"
	gRepo "reserve/shared/repository"
)

type RoomSetting interface {
	Insert(ctx context.Context, entity model.RoomSetting) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomSetting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomSetting, error)
	GetByRoomIDs(ctx context.Context, tenant string, roomIDs []string) ([]model.RoomSetting, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type roomSettings struct {
	gRepo.Repository[model.RoomSetting]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomSetting {
	return &roomSettings{
		Repository: gRepo.NewRepository[model.RoomSetting](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// ByRoomIDs matches the settings of roomIDs within one tenant.
func ByRoomIDs(tenant string, roomIDs []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenant, Value: tenant, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRoomID, Value: roomIDs, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}
}

// GetByRoomIDs returns the rows ordered by room id. Rooms without a row are simply absent.
func (repo *roomSettings) GetByRoomIDs(ctx context.Context, tenant string, roomIDs []string) ([]model.RoomSetting, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetByRoomIDs")
	defer scope.End()

	scope.SetAttribute("room.ids", roomIDs)

	params := gDto.QueryParams{SortBy: model.FieldRoomID, SortDir: gDto.SortDirAsc}

	return repo.GetAll(ctx, params, ByRoomIDs(tenant, roomIDs)) //nolint:wrapcheck
}
