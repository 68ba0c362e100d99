package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reserve/infras/otel"
	"reserve/infras/postgres"
	"reserve/internal/domains/bookinglog/model"
	gDto "reserve/shared/dto"
	gRepo "reserve/shared/repository"
)

type BookingLog interface {
	Insert(ctx context.Context, entity model.BookingLog) error
	InsertBulk(ctx context.Context, entities []model.BookingLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BookingLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
