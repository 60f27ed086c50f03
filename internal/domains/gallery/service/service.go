package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"saylamc/config"
	"saylamc/infras/otel"
	"saylamc/infras/s3"
	"saylamc/internal/domains/gallery/model"
	"saylamc/internal/domains/gallery/model/dto"
	"saylamc/internal/domains/gallery/repository"
	"saylamc/shared"
	"saylamc/shared/cache"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGallery    = "gallery:get"
	cacheGetAllGallery = "gallery:get_all"
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateGalleryImageRequest) (dto.GalleryImageResponse, error)
	GetAll(ctx context.Context, category string) ([]dto.GalleryImageResponse, error)
	Get(ctx context.Context, id int64) (dto.GalleryImageResponse, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryImageRequest) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create gallery image")

		return res, fmt.Errorf("failed to create gallery image: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created gallery image")

		return res, fmt.Errorf("failed to get created gallery image: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)
	}()

	return res, nil
}

// GetAll lists gallery images, optionally narrowed to one category.
func (s *serviceImpl) GetAll(ctx context.Context, category string) (res []dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{}.
		SortBy(model.FieldDisplayOrder, gDto.SortDirAsc).
		SortBy(constant.FieldCreatedAt, gDto.SortDirDesc)

	filter := gDto.FilterGroup{}
	if category != constant.Empty {
		filter = shared.FilterByField(category, model.FieldCategory, model.TableName)
	}

	// The key is derived from the query shape, so each category listing is
	// cached on its own entry under the gallery:get_all prefix.
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGallery, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery images")

		return res, nil
	}

	images, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery images")

		return res, fmt.Errorf("failed to get gallery images: %w", err)
	}

	res = dto.FromModels(images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery images to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGallery, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery image")

		return res, nil
	}

	image, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image")

		return res, fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == 0 {
		return res, failure.NotFound("Gallery image not found")
	}

	res.FromModel(image)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery image to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image for deletion")

		return fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == 0 {
		log.Error().Msg("gallery image not found")

		return failure.NotFound("Gallery image not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetGallery)
		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, image.ImageURL)
		if objectName == constant.Empty {
			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := s.cfg.External.S3.BucketName
	fileName := uuid.NewString() + "-" + req.Image.Filename

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromModel(url, fileName)

	return res, nil
}
