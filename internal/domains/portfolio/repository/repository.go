package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"saylamc/infras/otel"
	"saylamc/infras/postgres"
	"saylamc/internal/domains/portfolio/model"
	gDto "saylamc/shared/dto"
	gRepo "saylamc/shared/repository"
)

type Portfolio interface {
	Insert(ctx context.Context, model model.Portfolio) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Portfolio, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Portfolio, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Portfolio]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Portfolio {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Portfolio](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
