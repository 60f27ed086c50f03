package service_test

import (
	"context"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"saylamc/config"
	s3Mocks "saylamc/infras/s3/mocks"
	"saylamc/infras/otel/mocks"
	galleryMocks "saylamc/internal/domains/gallery/mocks"
	"saylamc/internal/domains/gallery/model"
	"saylamc/internal/domains/gallery/model/dto"
	"saylamc/internal/domains/gallery/service"
	cacheMocks "saylamc/shared/cache/mocks"
	gDto "saylamc/shared/dto"
)

func newGalleryService(t *testing.T) (service.Gallery, *galleryMocks.MockGallery, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	return service.New(mockRepo, cfg, mockCache, mockOtel, mockS3), mockRepo, mockCache, mockS3
}

func TestGalleryService_GetAll_CategoryFilter(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		wantFilter bool
	}{
		{name: "all images", category: ""},
		{name: "single category", category: "wedding", wantFilter: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newGalleryService(t)

			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(assert.AnError)

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.GalleryImage, error) {
					if tt.wantFilter {
						require.Len(t, filter.Filters, 1)
					} else {
						assert.Empty(t, filter.Filters)
					}

					return []model.GalleryImage{{ID: 1, Category: "wedding"}}, nil
				})

			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.GetAll(context.Background(), tt.category)

			require.NoError(t, err)
			require.Len(t, res, 1)
		})
	}
}

// Each category listing caches under its own key within the gallery:get_all
// prefix, so a filtered listing never serves the unfiltered one.
func TestGalleryService_GetAll_DistinctCacheKeysPerCategory(t *testing.T) {
	svc, mockRepo, mockCache, _ := newGalleryService(t)

	keys := make(map[string]string, 2)

	for _, category := range []string{"", "wedding"} {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any) error {
				keys[category] = key

				return assert.AnError
			})

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.GalleryImage{}, nil)
	}

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	_, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)

	_, err = svc.GetAll(context.Background(), "wedding")
	require.NoError(t, err)

	assert.NotEqual(t, keys[""], keys["wedding"])
	assert.True(t, strings.HasPrefix(keys[""], "gallery:get_all:"))
	assert.True(t, strings.HasPrefix(keys["wedding"], "gallery:get_all:"))
}

// Deleting an image also removes the stored object, keyed off the image URL.
func TestGalleryService_Delete_RemovesStoredObject(t *testing.T) {
	svc, mockRepo, mockCache, mockS3 := newGalleryService(t)

	image := model.GalleryImage{
		ID:       4,
		ImageURL: "https://cdn.example.com/test-bucket/gallery_image/abc.png",
	}

	var wg sync.WaitGroup
	wg.Add(1)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(image, nil)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockS3.EXPECT().
		GetObjectNameFromURL("test-bucket", image.ImageURL).
		Return("abc.png")

	mockS3.EXPECT().
		DeleteFile(gomock.Any(), "test-bucket", model.EntityName, "abc.png").
		DoAndReturn(func(_ context.Context, _, _, _ string) error {
			wg.Done()

			return nil
		})

	require.NoError(t, svc.Delete(context.Background(), 4))

	wg.Wait()
}

func TestGalleryService_UploadImage(t *testing.T) {
	svc, _, _, mockS3 := newGalleryService(t)

	fileHeader := &multipart.FileHeader{Filename: "photo.png"}

	mockS3.EXPECT().
		UploadFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any(), fileHeader, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
			assert.True(t, strings.HasSuffix(fileName, "-photo.png"))
			assert.Greater(t, len(fileName), len("-photo.png"))

			return "https://cdn.example.com/test-bucket/gallery_image/" + fileName, nil
		})

	res, err := svc.UploadImage(context.Background(), dto.UploadImageRequest{Image: fileHeader})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.URL, res.FileName))
}
