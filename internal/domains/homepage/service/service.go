package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"saylamc/config"
	"saylamc/infras/otel"
	"saylamc/internal/domains/homepage/model"
	"saylamc/internal/domains/homepage/model/dto"
	"saylamc/internal/domains/homepage/repository"
	"saylamc/shared"
	"saylamc/shared/cache"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSection        = "homepage_section:get"
	cacheGetAllSection     = "homepage_section:get_all"
	cacheGetVisibleSection = "homepage_section:visible"
)

type HomepageSection interface {
	Create(ctx context.Context, req dto.CreateHomepageSectionRequest) (dto.HomepageSectionResponse, error)
	GetAll(ctx context.Context) ([]dto.HomepageSectionResponse, error)
	GetVisible(ctx context.Context) ([]dto.HomepageSectionResponse, error)
	Get(ctx context.Context, id int64) (dto.HomepageSectionResponse, error)
	Update(ctx context.Context, req dto.UpdateHomepageSectionRequest, id int64) (dto.HomepageSectionResponse, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, req dto.ReorderSectionsRequest) error
}

type serviceImpl struct {
	repo  repository.HomepageSection
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.HomepageSection, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) HomepageSection {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHomepageSectionRequest) (res dto.HomepageSectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create homepage section")

		return res, fmt.Errorf("failed to create homepage section: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created homepage section")

		return res, fmt.Errorf("failed to get created homepage section: %w", err)
	}

	res.FromModel(created)

	s.invalidateListings(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.HomepageSectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllSection, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllSection).Msg("cache hit for homepage sections")

		return res, nil
	}

	params := gDto.QueryParams{}.SortBy(model.FieldSectionOrder, gDto.SortDirAsc)

	sections, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get homepage sections")

		return res, fmt.Errorf("failed to get homepage sections: %w", err)
	}

	res = dto.FromModels(sections)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllSection, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save homepage sections to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetVisible(ctx context.Context) (res []dto.HomepageSectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetVisible")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetVisibleSection, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetVisibleSection).Msg("cache hit for visible homepage sections")

		return res, nil
	}

	params := gDto.QueryParams{}.SortBy(model.FieldSectionOrder, gDto.SortDirAsc)
	filter := shared.FilterByField(true, model.FieldIsVisible, model.TableName)

	sections, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visible homepage sections")

		return res, fmt.Errorf("failed to get visible homepage sections: %w", err)
	}

	res = dto.FromModels(sections)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetVisibleSection, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save visible homepage sections to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.HomepageSectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetSection, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for homepage section")

		return res, nil
	}

	section, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get homepage section")

		return res, fmt.Errorf("failed to get homepage section: %w", err)
	}

	if section.ID == 0 {
		return res, failure.NotFound("Homepage section not found")
	}

	res.FromModel(section)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save homepage section to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHomepageSectionRequest, id int64) (res dto.HomepageSectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check homepage section existence")

		return res, fmt.Errorf("failed to check homepage section existence: %w", err)
	}

	if !exist {
		log.Error().Msg("homepage section not found")

		return res, failure.NotFound("Homepage section not found")
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update homepage section")

		return res, fmt.Errorf("failed to update homepage section: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated homepage section")

		return res, fmt.Errorf("failed to get updated homepage section: %w", err)
	}

	res.FromModel(updated)

	s.invalidateListings(ctx)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check homepage section existence")

		return fmt.Errorf("failed to check homepage section existence: %w", err)
	}

	if !exist {
		log.Error().Msg("homepage section not found")

		return failure.NotFound("Homepage section not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete homepage section")

		return fmt.Errorf("failed to delete homepage section: %w", err)
	}

	s.invalidateListings(ctx)

	return nil
}

// Reorder verifies every referenced section first, then applies the whole
// batch in one transaction. A missing id fails the entire request.
func (s *serviceImpl) Reorder(ctx context.Context, req dto.ReorderSectionsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reorder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	orders := make(map[int64]int, len(req.Sections))

	for _, section := range req.Sections {
		exist, err := s.repo.Exist(ctx, shared.FilterByID(section.ID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check homepage section existence")

			return fmt.Errorf("failed to check homepage section existence: %w", err)
		}

		if !exist {
			log.Error().Int64("id", section.ID).Msg("homepage section not found")

			return failure.NotFound("Homepage section not found")
		}

		orders[section.ID] = section.SectionOrder
	}

	if err = s.repo.Reorder(ctx, orders); err != nil {
		log.Error().Err(err).Msg("failed to reorder homepage sections")

		return fmt.Errorf("failed to reorder homepage sections: %w", err)
	}

	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetSection)
		shared.InvalidateCaches(c, s.cache, cacheGetAllSection)
		shared.InvalidateCaches(c, s.cache, cacheGetVisibleSection)
	}()
}
