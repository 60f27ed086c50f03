//go:build wireinject
// +build wireinject

package di

import (
	"saylamc/config"
	"saylamc/infras/jwt"
	"saylamc/infras/otel"
	"saylamc/infras/postgres"
	"saylamc/infras/redis"
	"saylamc/infras/s3"
	"saylamc/shared/cache"
	"saylamc/transport/http"
	"saylamc/transport/http/middleware"
	"saylamc/transport/http/router"

	"github.com/google/wire"

	authService "saylamc/internal/domains/auth/service"
	bookingRepository "saylamc/internal/domains/booking/repository"
	bookingService "saylamc/internal/domains/booking/service"
	dashboardService "saylamc/internal/domains/dashboard/service"
	galleryRepository "saylamc/internal/domains/gallery/repository"
	galleryService "saylamc/internal/domains/gallery/service"
	homepageRepository "saylamc/internal/domains/homepage/repository"
	homepageService "saylamc/internal/domains/homepage/service"
	packageRepository "saylamc/internal/domains/packages/repository"
	packageService "saylamc/internal/domains/packages/service"
	portfolioRepository "saylamc/internal/domains/portfolio/repository"
	portfolioService "saylamc/internal/domains/portfolio/service"
	serviceRepository "saylamc/internal/domains/service/repository"
	serviceService "saylamc/internal/domains/service/service"
	sitesettingRepository "saylamc/internal/domains/sitesetting/repository"
	sitesettingService "saylamc/internal/domains/sitesetting/service"
	testimonialRepository "saylamc/internal/domains/testimonial/repository"
	testimonialService "saylamc/internal/domains/testimonial/service"
	userRepository "saylamc/internal/domains/user/repository"

	adminHandler "saylamc/internal/handlers/admin"
	bookingHandler "saylamc/internal/handlers/booking"
	galleryHandler "saylamc/internal/handlers/gallery"
	homepageHandler "saylamc/internal/handlers/homepage"
	packageHandler "saylamc/internal/handlers/packages"
	portfolioHandler "saylamc/internal/handlers/portfolio"
	serviceHandler "saylamc/internal/handlers/service"
	sitesettingHandler "saylamc/internal/handlers/sitesetting"
	testimonialHandler "saylamc/internal/handlers/testimonial"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var contentDomains = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
	packageRepository.New,
	packageService.New,
	portfolioRepository.New,
	portfolioService.New,
	testimonialRepository.New,
	testimonialService.New,
	galleryRepository.New,
	galleryService.New,
	homepageRepository.New,
	homepageService.New,
	sitesettingRepository.New,
	sitesettingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var adminDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	contentDomains,
	bookingDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adminHandler.New,
	serviceHandler.New,
	packageHandler.New,
	portfolioHandler.New,
	testimonialHandler.New,
	galleryHandler.New,
	homepageHandler.New,
	sitesettingHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
