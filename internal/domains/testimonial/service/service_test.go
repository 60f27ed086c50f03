package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/config"
	"saylamc/infras/otel/mocks"
	testimonialMocks "saylamc/internal/domains/testimonial/mocks"
	"saylamc/internal/domains/testimonial/model"
	"saylamc/internal/domains/testimonial/model/dto"
	"saylamc/internal/domains/testimonial/service"
	cacheMocks "saylamc/shared/cache/mocks"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"
	"saylamc/shared/validator"
)

func newTestimonialService(t *testing.T) (service.Testimonial, *testimonialMocks.MockTestimonial, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := testimonialMocks.NewMockTestimonial(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

// A rating outside 1..5 never reaches the service: the request DTO rejects it.
func TestCreateTestimonialRequest_RatingBounds(t *testing.T) {
	tests := []struct {
		name        string
		rating      int
		expectError bool
	}{
		{name: "minimum rating", rating: 1},
		{name: "maximum rating", rating: 5},
		{name: "zero rating", rating: 0, expectError: true},
		{name: "rating above five", rating: 6, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateTestimonialRequest{
				ClientName:      "Siti",
				TestimonialText: "A wonderful host.",
				Rating:          tt.rating,
			}

			err := validator.ValidateStruct(&req)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTestimonialService_GetFeatured(t *testing.T) {
	svc, mockRepo, mockCache := newTestimonialService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Testimonial, error) {
			require.Len(t, params.Sort, 1)
			assert.Equal(t, model.FieldDisplayOrder, params.Sort[0].Field)
			require.Len(t, filter.Filters, 1)

			f, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldIsFeatured, f.Field)
			assert.Equal(t, true, f.Value)

			return []model.Testimonial{{ID: 1, ClientName: "Siti", Rating: 5, IsFeatured: true}}, nil
		})

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetFeatured(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].IsFeatured)
}

func TestTestimonialService_Get_NotFound(t *testing.T) {
	svc, mockRepo, mockCache := newTestimonialService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Testimonial{}, nil)

	_, err := svc.Get(context.Background(), 999)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Testimonial not found", err.Error())
}

func TestTestimonialService_Update_NotFound(t *testing.T) {
	svc, mockRepo, _ := newTestimonialService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	_, err := svc.Update(context.Background(), dto.UpdateTestimonialRequest{
		ClientName:      "Siti",
		TestimonialText: "Updated",
		Rating:          4,
	}, 999)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

// An update is a full overwrite: zero values like is_featured false are
// written out, not skipped.
func TestTestimonialService_Update_WritesFullRow(t *testing.T) {
	svc, mockRepo, mockCache := newTestimonialService(t)

	req := dto.UpdateTestimonialRequest{
		ClientName:      "Siti",
		TestimonialText: "Still wonderful.",
		Rating:          4,
	}

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Len(t, fields, 11)
			assert.Equal(t, false, fields["is_featured"])
			assert.Equal(t, 0, fields["display_order"])
			assert.Equal(t, 4, fields["rating"])

			return nil
		})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Testimonial{ID: 7, ClientName: "Siti", Rating: 4}, nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Update(context.Background(), req, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
}
