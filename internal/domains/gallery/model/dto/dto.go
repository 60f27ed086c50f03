package dto

import (
	"mime/multipart"

	"saylamc/internal/domains/gallery/model"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreateGalleryImageRequest struct {
	Title        string `json:"title" validate:"omitempty,max=255"`
	ImageURL     string `json:"image_url" validate:"required,max=500"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,max=500"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,gte=0"`
}

func (c *CreateGalleryImageRequest) ToModel() model.GalleryImage {
	return model.GalleryImage{
		Title:        c.Title,
		ImageURL:     c.ImageURL,
		ThumbnailURL: c.ThumbnailURL,
		Category:     c.Category,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type GalleryImageResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	gDto.Timestamps
}

func (r *GalleryImageResponse) FromModel(model model.GalleryImage) {
	r.ID = model.ID
	r.Title = model.Title
	r.ImageURL = model.ImageURL
	r.ThumbnailURL = model.ThumbnailURL
	r.Category = model.Category
	r.Description = model.Description
	r.DisplayOrder = model.DisplayOrder
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.GalleryImage) []GalleryImageResponse {
	responses := make([]GalleryImageResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
