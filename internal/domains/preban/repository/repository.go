package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"reserve/infras/otel"
	"reserve/infras/postgres"
	"reserve/internal/domains/preban/model"
	gDto "reserve/shared/dto"
	gRepo "reserve/shared/repository"
)

type PreBanLog interface {
	Insert(ctx context.Context, entity model.PreBanLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PreBanLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PreBanLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PreBanLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PreBanLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
