package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"saylamc/config"
	"saylamc/infras/otel"
	"saylamc/internal/domains/testimonial/model"
	"saylamc/internal/domains/testimonial/model/dto"
	"saylamc/internal/domains/testimonial/repository"
	"saylamc/shared"
	"saylamc/shared/cache"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTestimonial         = "testimonial:get"
	cacheGetAllTestimonial      = "testimonial:get_all"
	cacheGetFeaturedTestimonial = "testimonial:featured"
)

type Testimonial interface {
	Create(ctx context.Context, req dto.CreateTestimonialRequest) (dto.TestimonialResponse, error)
	GetAll(ctx context.Context) ([]dto.TestimonialResponse, error)
	GetFeatured(ctx context.Context) ([]dto.TestimonialResponse, error)
	Get(ctx context.Context, id int64) (dto.TestimonialResponse, error)
	Update(ctx context.Context, req dto.UpdateTestimonialRequest, id int64) (dto.TestimonialResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Testimonial
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Testimonial, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Testimonial {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTestimonialRequest) (res dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create testimonial")

		return res, fmt.Errorf("failed to create testimonial: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created testimonial")

		return res, fmt.Errorf("failed to get created testimonial: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTestimonial)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedTestimonial)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllTestimonial, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllTestimonial).Msg("cache hit for testimonials")

		return res, nil
	}

	params := gDto.QueryParams{}.
		SortBy(model.FieldDisplayOrder, gDto.SortDirAsc).
		SortBy(constant.FieldCreatedAt, gDto.SortDirDesc)

	testimonials, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, fmt.Errorf("failed to get testimonials: %w", err)
	}

	res = dto.FromModels(testimonials)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllTestimonial, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetFeatured(ctx context.Context) (res []dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFeatured")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetFeaturedTestimonial, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetFeaturedTestimonial).Msg("cache hit for featured testimonials")

		return res, nil
	}

	params := gDto.QueryParams{}.SortBy(model.FieldDisplayOrder, gDto.SortDirAsc)
	filter := shared.FilterByField(true, model.FieldIsFeatured, model.TableName)

	testimonials, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured testimonials")

		return res, fmt.Errorf("failed to get featured testimonials: %w", err)
	}

	res = dto.FromModels(testimonials)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetFeaturedTestimonial, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured testimonials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetTestimonial, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for testimonial")

		return res, nil
	}

	testimonial, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonial")

		return res, fmt.Errorf("failed to get testimonial: %w", err)
	}

	if testimonial.ID == 0 {
		return res, failure.NotFound("Testimonial not found")
	}

	res.FromModel(testimonial)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save testimonial to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTestimonialRequest, id int64) (res dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check testimonial existence")

		return res, fmt.Errorf("failed to check testimonial existence: %w", err)
	}

	if !exist {
		log.Error().Msg("testimonial not found")

		return res, failure.NotFound("Testimonial not found")
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		log.Error().Err(err).Msg("failed to update testimonial")

		return res, fmt.Errorf("failed to update testimonial: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated testimonial")

		return res, fmt.Errorf("failed to get updated testimonial: %w", err)
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetTestimonial)
		shared.InvalidateCaches(c, s.cache, cacheGetAllTestimonial)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedTestimonial)
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
		log.Error().Err(err).Msg("failed to check testimonial existence")

		return fmt.Errorf("failed to check testimonial existence: %w", err)
	}

	if !exist {
		log.Error().Msg("testimonial not found")

		return failure.NotFound("Testimonial not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete testimonial")

		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetTestimonial)
		shared.InvalidateCaches(c, s.cache, cacheGetAllTestimonial)
		shared.InvalidateCaches(c, s.cache, cacheGetFeaturedTestimonial)
	}()

	return nil
}
