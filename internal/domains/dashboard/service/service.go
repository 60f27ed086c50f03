package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"saylamc/infras/otel"
	bookingDto "saylamc/internal/domains/booking/model/dto"
	bookingRepo "saylamc/internal/domains/booking/repository"
	"saylamc/internal/domains/dashboard/model/dto"
	galleryRepo "saylamc/internal/domains/gallery/repository"
	packageRepo "saylamc/internal/domains/packages/repository"
	portfolioRepo "saylamc/internal/domains/portfolio/repository"
	serviceRepo "saylamc/internal/domains/service/repository"
	testimonialRepo "saylamc/internal/domains/testimonial/repository"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	bookings     bookingRepo.Booking
	services     serviceRepo.Service
	packages     packageRepo.Package
	portfolio    portfolioRepo.Portfolio
	gallery      galleryRepo.Gallery
	testimonials testimonialRepo.Testimonial
	otel         otel.Otel
}

func New(
	bookings bookingRepo.Booking,
	services serviceRepo.Service,
	packages packageRepo.Package,
	portfolio portfolioRepo.Portfolio,
	gallery galleryRepo.Gallery,
	testimonials testimonialRepo.Testimonial,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		bookings:     bookings,
		services:     services,
		packages:     packages,
		portfolio:    portfolio,
		gallery:      gallery,
		testimonials: testimonials,
		otel:         otel,
	}
}

// Stats gathers row counts across every content table plus the most recent
// bookings. Counts are fetched live so the dashboard never shows stale totals.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	counts := []struct {
		name  string
		dest  *int
		count func(context.Context, gDto.FilterGroup) (int, error)
	}{
		{"bookings", &res.Stats.Bookings, s.bookings.Count},
		{"services", &res.Stats.Services, s.services.Count},
		{"packages", &res.Stats.Packages, s.packages.Count},
		{"portfolio", &res.Stats.Portfolio, s.portfolio.Count},
		{"gallery", &res.Stats.Gallery, s.gallery.Count},
		{"testimonials", &res.Stats.Testimonials, s.testimonials.Count},
	}

	for _, c := range counts {
		count, err := c.count(ctx, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Str("entity", c.name).Msg("failed to count rows")

			return res, fmt.Errorf("failed to count %s: %w", c.name, err)
		}

		*c.dest = count
	}

	params := gDto.QueryParams{Limit: constant.DashboardRecentBookingLimit}.
		SortBy(constant.FieldCreatedAt, gDto.SortDirDesc)

	recent, err := s.bookings.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.Success = true
	res.RecentBookings = bookingDto.FromModels(recent)

	return res, nil
}
