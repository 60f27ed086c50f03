package service_test

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/config"
	"saylamc/infras/otel/mocks"
	portfolioMocks "saylamc/internal/domains/portfolio/mocks"
	"saylamc/internal/domains/portfolio/model"
	"saylamc/internal/domains/portfolio/model/dto"
	"saylamc/internal/domains/portfolio/service"
	cacheMocks "saylamc/shared/cache/mocks"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"
)

func newPortfolioService(t *testing.T) (service.Portfolio, *portfolioMocks.MockPortfolio, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := portfolioMocks.NewMockPortfolio(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestPortfolioService_Create_DuplicateSlug(t *testing.T) {
	svc, mockRepo, _ := newPortfolioService(t)

	req := dto.CreatePortfolioRequest{
		Title: "Garden Wedding",
		Slug:  "garden-wedding",
	}

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(0), &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestPortfolioService_GetFeatured(t *testing.T) {
	svc, mockRepo, mockCache := newPortfolioService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Portfolio, error) {
			require.Len(t, params.Sort, 1)
			assert.Equal(t, model.FieldDisplayOrder, params.Sort[0].Field)
			require.Len(t, filter.Filters, 1)

			f, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldIsFeatured, f.Field)

			return []model.Portfolio{{ID: 3, Title: "Garden Wedding", IsFeatured: true}}, nil
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

// One route serves both addressing modes: an all-digits identifier is treated
// as an id, anything else as a slug.
func TestPortfolioService_Get_IDOrSlug(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantField  string
	}{
		{name: "numeric identifier resolves by id", identifier: "3", wantField: model.FieldID},
		{name: "non-numeric identifier resolves by slug", identifier: "garden-wedding", wantField: model.FieldSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newPortfolioService(t)

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(assert.AnError)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Portfolio, error) {
					require.Len(t, filter.Filters, 1)

					f, ok := filter.Filters[0].(gDto.Filter)
					require.True(t, ok)
					assert.Equal(t, tt.wantField, f.Field)

					return model.Portfolio{ID: 3, Slug: "garden-wedding"}, nil
				})

			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.Get(context.Background(), tt.identifier)

			require.NoError(t, err)
			assert.Equal(t, int64(3), res.ID)
		})
	}
}

func TestPortfolioService_Delete_NotFound(t *testing.T) {
	svc, mockRepo, _ := newPortfolioService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Delete(context.Background(), 999)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Portfolio item not found", err.Error())
}
