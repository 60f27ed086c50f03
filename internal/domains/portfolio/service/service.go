package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"saylamc/config"
	"saylamc/infras/otel"
	"saylamc/internal/domains/portfolio/model"
	"saylamc/internal/domains/portfolio/model/dto"
	"saylamc/internal/domains/portfolio/repository"
	"saylamc/shared"
	"saylamc/shared/cache"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPortfolio         = "portfolio:get"
	cacheGetAllPortfolio      = "portfolio:get_all"
	cacheGetFeaturedPortfolio = "portfolio:featured"
)

type Portfolio interface {
	Create(ctx context.Context, req dto.CreatePortfolioRequest) (dto.PortfolioResponse, error)
	GetAll(ctx context.Context) ([]dto.PortfolioResponse, error)
	GetFeatured(ctx context.Context) ([]dto.PortfolioResponse, error)
	Get(ctx context.Context, identifier string) (dto.PortfolioResponse, error)
	Update(ctx context.Context, req dto.UpdatePortfolioRequest, id int64) (dto.PortfolioResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Portfolio
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Portfolio, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Portfolio {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePortfolioRequest) (res dto.PortfolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("portfolio slug already exists")
		}

		log.Error().Err(err).Msg("failed to create portfolio item")

		return res, fmt.Errorf("failed to create portfolio item: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created portfolio item")

		return res, fmt.Errorf("failed to get created portfolio item: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPortfolio)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedPortfolio)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.PortfolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllPortfolio, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllPortfolio).Msg("cache hit for portfolio items")

		return res, nil
	}

	params := gDto.QueryParams{}.
		SortBy(model.FieldDisplayOrder, gDto.SortDirAsc).
		SortBy(constant.FieldCreatedAt, gDto.SortDirDesc)

	items, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get portfolio items")

		return res, fmt.Errorf("failed to get portfolio items: %w", err)
	}

	res = dto.FromModels(items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllPortfolio, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save portfolio items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetFeatured(ctx context.Context) (res []dto.PortfolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFeatured")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetFeaturedPortfolio, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetFeaturedPortfolio).Msg("cache hit for featured portfolio items")

		return res, nil
	}

	params := gDto.QueryParams{}.SortBy(model.FieldDisplayOrder, gDto.SortDirAsc)
	filter := shared.FilterByField(true, model.FieldIsFeatured, model.TableName)

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured portfolio items")

		return res, fmt.Errorf("failed to get featured portfolio items: %w", err)
	}

	res = dto.FromModels(items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetFeaturedPortfolio, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured portfolio items to cache")
		}
	}()

	return res, nil
}

// Get resolves the identifier as a numeric id when possible, as a slug
// otherwise.
func (s *serviceImpl) Get(ctx context.Context, identifier string) (res dto.PortfolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPortfolio, identifier)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for portfolio item")

		return res, nil
	}

	var filter gDto.FilterGroup
	if shared.IsNumeric(identifier) {
		id, _ := shared.ParseID(identifier)
		filter = shared.FilterByID(id, model.FieldID, model.TableName)
	} else {
		filter = shared.FilterByField(identifier, model.FieldSlug, model.TableName)
	}

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get portfolio item")

		return res, fmt.Errorf("failed to get portfolio item: %w", err)
	}

	if item.ID == 0 {
		return res, failure.NotFound("Portfolio item not found")
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save portfolio item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePortfolioRequest, id int64) (res dto.PortfolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check portfolio existence")

		return res, fmt.Errorf("failed to check portfolio existence: %w", err)
	}

	if !exist {
		log.Error().Msg("portfolio item not found")

		return res, failure.NotFound("Portfolio item not found")
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update portfolio item")

		return res, fmt.Errorf("failed to update portfolio item: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated portfolio item")

		return res, fmt.Errorf("failed to get updated portfolio item: %w", err)
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPortfolio)
		shared.InvalidateCaches(c, s.cache, cacheGetAllPortfolio)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedPortfolio)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check portfolio existence")

		return fmt.Errorf("failed to check portfolio existence: %w", err)
	}

	if !exist {
		log.Error().Msg("portfolio item not found")

		return failure.NotFound("Portfolio item not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete portfolio item")

		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPortfolio)
		shared.InvalidateCaches(c, s.cache, cacheGetAllPortfolio)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedPortfolio)
	}()

	return nil
}
