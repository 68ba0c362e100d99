package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"reserve/infras/otel"
	"reserve/infras/postgres"
	"reserve/internal/domains/booking/model"
	"reserve/shared/constant"
	gDto "reserve/shared/dto"
	"reserve/shared/logger"
	gRepo "reserve/shared/repository"
)

const requestNumberSequence = "booking_request_number_seq"

type Booking interface {
	Insert(ctx context.Context, entity model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	NextRequestNumber(ctx context.Context) (int64, error)
	DueNoShows(ctx context.Context, cutoff time.Time, limit, offset int) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextRequestNumber draws the next human facing request number. Numbers are shared across tenants.
func (repo *repositoryImpl) NextRequestNumber(ctx context.Context) (number int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextRequestNumber")
	defer scope.End()

	query := fmt.Sprintf("SELECT nextval('%s')", requestNumberSequence)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Write.GetContext(ctx, &number, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get next request number: %w", err)
	}

	return number, nil
}

// DueNoShows lists approved bookings across tenants that started before cutoff without a check-in, oldest
// first. offset skips rows a caller already tried.
func (repo *repositoryImpl) DueNoShows(ctx context.Context, cutoff time.Time, limit, offset int) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.DueNoShows")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusApproved), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStartDate, Value: cutoff, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldCheckedInAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{Limit: limit, Offset: offset, SortBy: model.FieldStartDate, SortDir: gDto.SortDirAsc}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
