package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"saylamc/config"
	"saylamc/infras/otel"
	"saylamc/internal/domains/sitesetting/model"
	"saylamc/internal/domains/sitesetting/model/dto"
	"saylamc/internal/domains/sitesetting/repository"
	"saylamc/shared"
	"saylamc/shared/cache"
	"saylamc/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSiteSetting = "site_setting:get"
)

type SiteSetting interface {
	Get(ctx context.Context) (dto.SiteSettingResponse, error)
	Upsert(ctx context.Context, req dto.UpsertSiteSettingRequest) (dto.SiteSettingResponse, error)
}

type serviceImpl struct {
	repo  repository.SiteSetting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.SiteSetting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) SiteSetting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the settings row. When no row exists yet it returns an empty
// response rather than an error so the public site always gets a payload.
func (s *serviceImpl) Get(ctx context.Context) (res dto.SiteSettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetSiteSetting, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSiteSetting).Msg("cache hit for site settings")

		return res, nil
	}

	setting, err := s.repo.Get(ctx, shared.FilterByField(true, model.FieldSingleton, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get site settings")

		return res, fmt.Errorf("failed to get site settings: %w", err)
	}

	// No row yet. Nothing to cache either, so the first Upsert shows up
	// immediately.
	if setting.ID == 0 {
		return res, nil
	}

	res.FromModel(setting)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSiteSetting, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save site settings to cache")
		}
	}()

	return res, nil
}

// Upsert overwrites the single settings row, creating it on first use.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertSiteSettingRequest) (res dto.SiteSettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Upsert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to upsert site settings")

		return res, fmt.Errorf("failed to upsert site settings: %w", err)
	}

	setting, err := s.repo.Get(ctx, shared.FilterByField(true, model.FieldSingleton, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get upserted site settings")

		return res, fmt.Errorf("failed to get upserted site settings: %w", err)
	}

	res.FromModel(setting)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetSiteSetting)
	}()

	return res, nil
}
