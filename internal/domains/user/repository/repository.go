package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"saylamc/infras/otel"
	"saylamc/infras/postgres"
	"saylamc/internal/domains/user/model"
	gDto "saylamc/shared/dto"
	gRepo "saylamc/shared/repository"
)

type AdminUser interface {
	Insert(ctx context.Context, model model.AdminUser) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AdminUser, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AdminUser]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AdminUser {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdminUser](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
