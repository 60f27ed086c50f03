package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"saylamc/infras/otel"
	"saylamc/infras/postgres"
	"saylamc/internal/domains/sitesetting/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/logger"
	gRepo "saylamc/shared/repository"
)

type SiteSetting interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SiteSetting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SiteSetting, error)
	Upsert(ctx context.Context, model model.SiteSetting) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SiteSetting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) SiteSetting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SiteSetting](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the settings row in a single statement. The singleton column
// always conflicts against the one existing row, so the insert degrades into
// an update of every content column while created_at keeps its original value.
func (repo *repositoryImpl) Upsert(ctx context.Context, setting model.SiteSetting) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".site_setting.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	assignments := make([]string, 0, len(repo.InsertColumns))

	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)

		if col == model.FieldSingleton || col == constant.FieldCreatedAt {
			continue
		}

		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldSingleton,
		strings.Join(assignments, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.NamedExecContext(ctx, query, setting); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
