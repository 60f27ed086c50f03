package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/config"
	"saylamc/infras/otel/mocks"
	homepageMocks "saylamc/internal/domains/homepage/mocks"
	"saylamc/internal/domains/homepage/model"
	"saylamc/internal/domains/homepage/model/dto"
	"saylamc/internal/domains/homepage/service"
	cacheMocks "saylamc/shared/cache/mocks"
	gDto "saylamc/shared/dto"
	"saylamc/shared/failure"
)

func newHomepageService(t *testing.T) (service.HomepageSection, *homepageMocks.MockHomepageSection, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := homepageMocks.NewMockHomepageSection(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestHomepageService_GetVisible(t *testing.T) {
	svc, mockRepo, mockCache := newHomepageService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.HomepageSection, error) {
			require.Len(t, params.Sort, 1)
			assert.Equal(t, model.FieldSectionOrder, params.Sort[0].Field)
			assert.Equal(t, gDto.SortDirAsc, params.Sort[0].Dir)
			require.Len(t, filter.Filters, 1)

			return []model.HomepageSection{
				{ID: 1, SectionType: "hero", SectionOrder: 1, IsVisible: true},
				{ID: 2, SectionType: "about", SectionOrder: 2, IsVisible: true},
			}, nil
		})

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetVisible(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "hero", res[0].SectionType)
}

// The whole reorder batch is rejected before any write when one of the
// referenced sections does not exist.
func TestHomepageService_Reorder_MissingIDFailsWholeBatch(t *testing.T) {
	svc, mockRepo, _ := newHomepageService(t)

	req := dto.ReorderSectionsRequest{
		Sections: []dto.ReorderSectionItem{
			{ID: 1, SectionOrder: 2},
			{ID: 999, SectionOrder: 1},
		},
	}

	gomock.InOrder(
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil),
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil),
	)

	err := svc.Reorder(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestHomepageService_Reorder(t *testing.T) {
	svc, mockRepo, mockCache := newHomepageService(t)

	req := dto.ReorderSectionsRequest{
		Sections: []dto.ReorderSectionItem{
			{ID: 1, SectionOrder: 2},
			{ID: 2, SectionOrder: 1},
		},
	}

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(2)

	mockRepo.EXPECT().
		Reorder(gomock.Any(), map[int64]int{1: 2, 2: 1}).
		Return(nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	assert.NoError(t, svc.Reorder(context.Background(), req))
}

func TestHomepageService_Get(t *testing.T) {
	t.Run("missing section", func(t *testing.T) {
		svc, mockRepo, mockCache := newHomepageService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.HomepageSection{}, nil)

		_, err := svc.Get(context.Background(), 999)

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestHomepageService_Create_DefaultsVisible(t *testing.T) {
	svc, mockRepo, mockCache := newHomepageService(t)

	req := dto.CreateHomepageSectionRequest{
		SectionType:  "hero",
		SectionTitle: "Welcome",
	}

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, section model.HomepageSection) (int64, error) {
			assert.True(t, section.IsVisible)

			return 5, nil
		})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.HomepageSection{ID: 5, SectionType: "hero", IsVisible: true}, nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(5), res.ID)
	assert.True(t, res.IsVisible)
}
