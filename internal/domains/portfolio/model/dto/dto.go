package dto

import (
	"github.com/lib/pq"

	"saylamc/internal/domains/portfolio/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreatePortfolioRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Slug          string   `json:"slug" validate:"required,max=255"`
	EventType     string   `json:"event_type" validate:"omitempty,max=100"`
	EventDate     string   `json:"event_date" validate:"omitempty,max=100"`
	ClientName    string   `json:"client_name" validate:"omitempty,max=255"`
	Description   string   `json:"description" validate:"omitempty"`
	ImageURL      string   `json:"image_url" validate:"omitempty,max=500"`
	GalleryImages []string `json:"gallery_images" validate:"omitempty"`
	VideoURL      string   `json:"video_url" validate:"omitempty,max=500"`
	IsFeatured    bool     `json:"is_featured"`
	DisplayOrder  int      `json:"display_order" validate:"omitempty,gte=0"`
}

func (c *CreatePortfolioRequest) ToModel() model.Portfolio {
	return model.Portfolio{
		Title:         c.Title,
		Slug:          c.Slug,
		EventType:     c.EventType,
		EventDate:     c.EventDate,
		ClientName:    c.ClientName,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		GalleryImages: pq.StringArray(c.GalleryImages),
		VideoURL:      c.VideoURL,
		IsFeatured:    c.IsFeatured,
		DisplayOrder:  c.DisplayOrder,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdatePortfolioRequest overwrites the full row, zero values included.
type UpdatePortfolioRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Slug          string   `json:"slug" validate:"required,max=255"`
	EventType     string   `json:"event_type" validate:"omitempty,max=100"`
	EventDate     string   `json:"event_date" validate:"omitempty,max=100"`
	ClientName    string   `json:"client_name" validate:"omitempty,max=255"`
	Description   string   `json:"description" validate:"omitempty"`
	ImageURL      string   `json:"image_url" validate:"omitempty,max=500"`
	GalleryImages []string `json:"gallery_images" validate:"omitempty"`
	VideoURL      string   `json:"video_url" validate:"omitempty,max=500"`
	IsFeatured    bool     `json:"is_featured"`
	DisplayOrder  int      `json:"display_order" validate:"omitempty,gte=0"`
}

func (u *UpdatePortfolioRequest) ToFields() map[string]any {
	return map[string]any{
		"title":          u.Title,
		"slug":           u.Slug,
		"event_type":     u.EventType,
		"event_date":     u.EventDate,
		"client_name":    u.ClientName,
		"description":    u.Description,
		"image_url":      u.ImageURL,
		"gallery_images": pq.StringArray(u.GalleryImages),
		"video_url":      u.VideoURL,
		"is_featured":    u.IsFeatured,
		"display_order":  u.DisplayOrder,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type PortfolioResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	EventType     string   `json:"event_type"`
	EventDate     string   `json:"event_date"`
	ClientName    string   `json:"client_name"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	GalleryImages []string `json:"gallery_images"`
	VideoURL      string   `json:"video_url"`
	IsFeatured    bool     `json:"is_featured"`
	DisplayOrder  int      `json:"display_order"`
	gDto.Timestamps
}

func (r *PortfolioResponse) FromModel(model model.Portfolio) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.EventType = model.EventType
	r.EventDate = model.EventDate
	r.ClientName = model.ClientName
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.GalleryImages = []string(model.GalleryImages)
	r.VideoURL = model.VideoURL
	r.IsFeatured = model.IsFeatured
	r.DisplayOrder = model.DisplayOrder
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Portfolio) []PortfolioResponse {
	responses := make([]PortfolioResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
