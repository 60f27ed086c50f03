package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/config"
	"saylamc/infras/otel/mocks"
	sitesettingMocks "saylamc/internal/domains/sitesetting/mocks"
	"saylamc/internal/domains/sitesetting/model"
	"saylamc/internal/domains/sitesetting/model/dto"
	"saylamc/internal/domains/sitesetting/service"
	cacheMocks "saylamc/shared/cache/mocks"
)

func newSiteSettingService(t *testing.T) (service.SiteSetting, *sitesettingMocks.MockSiteSetting, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := sitesettingMocks.NewMockSiteSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestSiteSettingService_Get(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		svc, mockRepo, mockCache := newSiteSettingService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.SiteSetting{
				ID:           1,
				SiteName:     "Sayla MC",
				ContactEmail: "hello@example.com",
				Singleton:    true,
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Sayla MC", res.SiteName)
		assert.Equal(t, "hello@example.com", res.ContactEmail)
	})

	t.Run("no row yet returns zero response and caches nothing", func(t *testing.T) {
		svc, mockRepo, mockCache := newSiteSettingService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.SiteSetting{}, nil)

		res, err := svc.Get(context.Background())

		require.NoError(t, err)
		assert.Equal(t, dto.SiteSettingResponse{}, res)
	})
}

// Upsert must behave identically whether or not a row already exists: the
// repository gets one upsert call and the service reads the row back.
func TestSiteSettingService_Upsert(t *testing.T) {
	svc, mockRepo, mockCache := newSiteSettingService(t)

	req := dto.UpsertSiteSettingRequest{
		SiteName:     "Sayla MC",
		SiteTagline:  "Event organizer",
		ContactEmail: "hello@example.com",
	}

	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, setting model.SiteSetting) error {
			assert.True(t, setting.Singleton)
			assert.Equal(t, "Sayla MC", setting.SiteName)
			assert.Equal(t, "Event organizer", setting.SiteTagline)
			assert.WithinDuration(t, time.Now(), setting.UpdatedAt, time.Minute)

			return nil
		})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SiteSetting{
			ID:           1,
			SiteName:     "Sayla MC",
			SiteTagline:  "Event organizer",
			ContactEmail: "hello@example.com",
			Singleton:    true,
		}, nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Upsert(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Sayla MC", res.SiteName)
}
