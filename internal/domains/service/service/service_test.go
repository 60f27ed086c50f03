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
	serviceMocks "saylamc/internal/domains/service/mocks"
	"saylamc/internal/domains/service/model"
	"saylamc/internal/domains/service/model/dto"
	"saylamc/internal/domains/service/service"
	cacheMocks "saylamc/shared/cache/mocks"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"
)

func newServiceService(t *testing.T) (service.Service, *serviceMocks.MockService, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := serviceMocks.NewMockService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestServiceService_Create_DuplicateSlug(t *testing.T) {
	svc, mockRepo, _ := newServiceService(t)

	req := dto.CreateServiceRequest{
		Title: "Wedding Planning",
		Slug:  "wedding-planning",
	}

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(0), &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

// The listing order is fixed server-side: display_order ascending, ties broken
// by newest first.
func TestServiceService_GetAll_Ordering(t *testing.T) {
	svc, mockRepo, mockCache := newServiceService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Service, error) {
			require.Len(t, params.Sort, 2)
			assert.Equal(t, model.FieldDisplayOrder, params.Sort[0].Field)
			assert.Equal(t, gDto.SortDirAsc, params.Sort[0].Dir)
			assert.Equal(t, constant.FieldCreatedAt, params.Sort[1].Field)
			assert.Equal(t, gDto.SortDirDesc, params.Sort[1].Dir)
			assert.Empty(t, filter.Filters)

			return []model.Service{{ID: 1, Title: "Wedding Planning"}}, nil
		})

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestServiceService_GetFeatured(t *testing.T) {
	svc, mockRepo, mockCache := newServiceService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Service, error) {
			require.Len(t, params.Sort, 1)
			assert.Equal(t, model.FieldDisplayOrder, params.Sort[0].Field)
			require.Len(t, filter.Filters, 1)

			return []model.Service{{ID: 2, Title: "MC Services", IsFeatured: true}}, nil
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
func TestServiceService_Get_IDOrSlug(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantField  string
	}{
		{name: "numeric identifier resolves by id", identifier: "12", wantField: model.FieldID},
		{name: "non-numeric identifier resolves by slug", identifier: "wedding-planning", wantField: model.FieldSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newServiceService(t)

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(assert.AnError)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Service, error) {
					require.Len(t, filter.Filters, 1)

					f, ok := filter.Filters[0].(gDto.Filter)
					require.True(t, ok)
					assert.Equal(t, tt.wantField, f.Field)

					return model.Service{ID: 12, Slug: "wedding-planning"}, nil
				})

			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.Get(context.Background(), tt.identifier)

			require.NoError(t, err)
			assert.Equal(t, int64(12), res.ID)
		})
	}
}

func TestServiceService_Get_NotFound(t *testing.T) {
	svc, mockRepo, mockCache := newServiceService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Service{}, nil)

	_, err := svc.Get(context.Background(), "missing-slug")

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Service not found", err.Error())
}

func TestServiceService_Update_NotFound(t *testing.T) {
	svc, mockRepo, _ := newServiceService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	_, err := svc.Update(context.Background(), dto.UpdateServiceRequest{Title: "X", Slug: "x"}, 999)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
