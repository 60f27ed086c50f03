package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/infras/otel"
	"saylamc/infras/otel/mocks"
	bookingMocks "saylamc/internal/domains/booking/mocks"
	bookingModel "saylamc/internal/domains/booking/model"
	"saylamc/internal/domains/dashboard/service"
	galleryMocks "saylamc/internal/domains/gallery/mocks"
	packageMocks "saylamc/internal/domains/packages/mocks"
	portfolioMocks "saylamc/internal/domains/portfolio/mocks"
	serviceMocks "saylamc/internal/domains/service/mocks"
	testimonialMocks "saylamc/internal/domains/testimonial/mocks"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
)

type dashboardMocks struct {
	bookings     *bookingMocks.MockBooking
	services     *serviceMocks.MockService
	packages     *packageMocks.MockPackage
	portfolio    *portfolioMocks.MockPortfolio
	gallery      *galleryMocks.MockGallery
	testimonials *testimonialMocks.MockTestimonial
}

func newDashboardService(t *testing.T) (service.Dashboard, dashboardMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := dashboardMocks{
		bookings:     bookingMocks.NewMockBooking(ctrl),
		services:     serviceMocks.NewMockService(ctrl),
		packages:     packageMocks.NewMockPackage(ctrl),
		portfolio:    portfolioMocks.NewMockPortfolio(ctrl),
		gallery:      galleryMocks.NewMockGallery(ctrl),
		testimonials: testimonialMocks.NewMockTestimonial(ctrl),
	}

	svc := service.New(m.bookings, m.services, m.packages, m.portfolio, m.gallery, m.testimonials, mocks.NewOtel())

	return svc, m
}

func TestDashboardService_Stats(t *testing.T) {
	svc, m := newDashboardService(t)

	m.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	m.services.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
	m.packages.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	m.portfolio.EXPECT().Count(gomock.Any(), gomock.Any()).Return(9, nil)
	m.gallery.EXPECT().Count(gomock.Any(), gomock.Any()).Return(30, nil)
	m.testimonials.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil)

	m.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			assert.Equal(t, constant.DashboardRecentBookingLimit, params.Limit)
			require.Len(t, params.Sort, 1)
			assert.Equal(t, constant.FieldCreatedAt, params.Sort[0].Field)
			assert.Equal(t, gDto.SortDirDesc, params.Sort[0].Dir)

			return []bookingModel.Booking{
				{ID: 2, FullName: "Newest"},
				{ID: 1, FullName: "Older"},
			}, nil
		})

	res, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 12, res.Stats.Bookings)
	assert.Equal(t, 4, res.Stats.Services)
	assert.Equal(t, 3, res.Stats.Packages)
	assert.Equal(t, 9, res.Stats.Portfolio)
	assert.Equal(t, 30, res.Stats.Gallery)
	assert.Equal(t, 7, res.Stats.Testimonials)
	require.Len(t, res.RecentBookings, 2)
	assert.Equal(t, "Newest", res.RecentBookings[0].FullName)
}

func TestDashboardService_Stats_CountError(t *testing.T) {
	svc, m := newDashboardService(t)

	m.bookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("database error"))

	_, err := svc.Stats(context.Background())

	assert.Error(t, err)
}

type recordingScope struct {
	traced []error
}

func (s *recordingScope) End()                         {}
func (s *recordingScope) AddEvent(string)              {}
func (s *recordingScope) SetAttribute(string, any)     {}
func (s *recordingScope) SetAttributes(map[string]any) {}

func (s *recordingScope) TraceError(err error) {
	s.traced = append(s.traced, err)
}

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.traced = append(s.traced, err)
	}
}

type recordingOtel struct {
	scope *recordingScope
}

func (o *recordingOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.scope
}

// A failed operation must land on the span: the deferred trace sees the final
// named error, not the nil it held when the defer was registered.
func TestDashboardService_Stats_ErrorReachesScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	bookings := bookingMocks.NewMockBooking(ctrl)
	services := serviceMocks.NewMockService(ctrl)
	packages := packageMocks.NewMockPackage(ctrl)
	portfolio := portfolioMocks.NewMockPortfolio(ctrl)
	gallery := galleryMocks.NewMockGallery(ctrl)
	testimonials := testimonialMocks.NewMockTestimonial(ctrl)

	scope := &recordingScope{}
	svc := service.New(bookings, services, packages, portfolio, gallery, testimonials, &recordingOtel{scope: scope})

	bookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("database error"))

	_, err := svc.Stats(context.Background())

	require.Error(t, err)
	require.Len(t, scope.traced, 1)
	assert.ErrorContains(t, scope.traced[0], "database error")
}
