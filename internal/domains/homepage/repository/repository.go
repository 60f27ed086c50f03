package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"saylamc/infras/otel"
	"saylamc/infras/postgres"
	"saylamc/internal/domains/homepage/model"
	"saylamc/shared"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/logger"
	gRepo "saylamc/shared/repository"
	"saylamc/shared/timezone"
)

type HomepageSection interface {
	Insert(ctx context.Context, model model.HomepageSection) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HomepageSection, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HomepageSection, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Reorder(ctx context.Context, orders map[int64]int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.HomepageSection]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) HomepageSection {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HomepageSection](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reorder applies every new section order inside one transaction so a failed
// batch never leaves the ordering half-applied.
func (repo *repositoryImpl) Reorder(ctx context.Context, orders map[int64]int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".homepage_section.Reorder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	for id, order := range orders {
		fields := map[string]any{
			model.FieldSectionOrder: order,
			constant.FieldUpdatedAt: timezone.Now(),
		}

		if err = repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	return nil
}
