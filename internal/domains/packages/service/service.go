package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"saylamc/config"
	"saylamc/infras/otel"
	"saylamc/internal/domains/packages/model"
	"saylamc/internal/domains/packages/model/dto"
	"saylamc/internal/domains/packages/repository"
	"saylamc/shared"
	"saylamc/shared/cache"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPackage         = "package:get"
	cacheGetAllPackage      = "package:get_all"
	cacheGetFeaturedPackage = "package:featured"
)

type Package interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.PackageResponse, error)
	GetAll(ctx context.Context) ([]dto.PackageResponse, error)
	GetFeatured(ctx context.Context) ([]dto.PackageResponse, error)
	Get(ctx context.Context, identifier string) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id int64) (dto.PackageResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Package
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Package, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Package {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("package slug already exists")
		}

		log.Error().Err(err).Msg("failed to create package")

		return res, fmt.Errorf("failed to create package: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created package")

		return res, fmt.Errorf("failed to get created package: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedPackage)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllPackage, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllPackage).Msg("cache hit for packages")

		return res, nil
	}

	params := gDto.QueryParams{}.
		SortBy(model.FieldDisplayOrder, gDto.SortDirAsc).
		SortBy(constant.FieldCreatedAt, gDto.SortDirDesc)

	packages, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	res = dto.FromModels(packages)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllPackage, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetFeatured(ctx context.Context) (res []dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFeatured")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetFeaturedPackage, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetFeaturedPackage).Msg("cache hit for featured packages")

		return res, nil
	}

	params := gDto.QueryParams{}.SortBy(model.FieldDisplayOrder, gDto.SortDirAsc)
	filter := shared.FilterByField(true, model.FieldIsFeatured, model.TableName)

	packages, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured packages")

		return res, fmt.Errorf("failed to get featured packages: %w", err)
	}

	res = dto.FromModels(packages)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetFeaturedPackage, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured packages to cache")
		}
	}()

	return res, nil
}

// Get resolves the identifier as a numeric id when possible, as a slug
// otherwise.
func (s *serviceImpl) Get(ctx context.Context, identifier string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPackage, identifier)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package")

		return res, nil
	}

	var filter gDto.FilterGroup
	if shared.IsNumeric(identifier) {
		id, _ := shared.ParseID(identifier)
		filter = shared.FilterByID(id, model.FieldID, model.TableName)
	} else {
		filter = shared.FilterByField(identifier, model.FieldSlug, model.TableName)
	}

	pkg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return res, fmt.Errorf("failed to get package: %w", err)
	}

	if pkg.ID == 0 {
		return res, failure.NotFound("Package not found")
	}

	res.FromModel(pkg)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id int64) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check package existence")

		return res, fmt.Errorf("failed to check package existence: %w", err)
	}

	if !exist {
		log.Error().Msg("package not found")

		return res, failure.NotFound("Package not found")
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update package")

		return res, fmt.Errorf("failed to update package: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated package")

		return res, fmt.Errorf("failed to get updated package: %w", err)
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPackage)
		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedPackage)
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
		log.Error().Err(err).Msg("failed to check package existence")

		return fmt.Errorf("failed to check package existence: %w", err)
	}

	if !exist {
		log.Error().Msg("package not found")

		return failure.NotFound("Package not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete package")

		return fmt.Errorf("failed to delete package: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPackage)
		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedPackage)
	}()

	return nil
}
