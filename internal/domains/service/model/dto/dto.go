package dto

import (
	"github.com/lib/pq"

	"saylamc/internal/domains/service/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreateServiceRequest struct {
	Title            string   `json:"title" validate:"required,max=255"`
	Slug             string   `json:"slug" validate:"required,max=255"`
	Description      string   `json:"description" validate:"omitempty"`
	ShortDescription string   `json:"short_description" validate:"omitempty,max=500"`
	Icon             string   `json:"icon" validate:"omitempty,max=100"`
	ImageURL         string   `json:"image_url" validate:"omitempty,max=500"`
	Features         []string `json:"features" validate:"omitempty"`
	IsFeatured       bool     `json:"is_featured"`
	DisplayOrder     int      `json:"display_order" validate:"omitempty,gte=0"`
}

func (c *CreateServiceRequest) ToModel() model.Service {
	return model.Service{
		Title:            c.Title,
		Slug:             c.Slug,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Icon:             c.Icon,
		ImageURL:         c.ImageURL,
		Features:         pq.StringArray(c.Features),
		IsFeatured:       c.IsFeatured,
		DisplayOrder:     c.DisplayOrder,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdateServiceRequest is a full-row overwrite: every editable column is
// resupplied by the caller, zero values included.
type UpdateServiceRequest struct {
	Title            string   `json:"title" validate:"required,max=255"`
	Slug             string   `json:"slug" validate:"required,max=255"`
	Description      string   `json:"description" validate:"omitempty"`
	ShortDescription string   `json:"short_description" validate:"omitempty,max=500"`
	Icon             string   `json:"icon" validate:"omitempty,max=100"`
	ImageURL         string   `json:"image_url" validate:"omitempty,max=500"`
	Features         []string `json:"features" validate:"omitempty"`
	IsFeatured       bool     `json:"is_featured"`
	DisplayOrder     int      `json:"display_order" validate:"omitempty,gte=0"`
}

func (u *UpdateServiceRequest) ToFields() map[string]any {
	return map[string]any{
		"title":             u.Title,
		"slug":              u.Slug,
		"description":       u.Description,
		"short_description": u.ShortDescription,
		"icon":              u.Icon,
		"image_url":         u.ImageURL,
		"features":          pq.StringArray(u.Features),
		"is_featured":       u.IsFeatured,
		"display_order":     u.DisplayOrder,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type ServiceResponse struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Icon             string   `json:"icon"`
	ImageURL         string   `json:"image_url"`
	Features         []string `json:"features"`
	IsFeatured       bool     `json:"is_featured"`
	DisplayOrder     int      `json:"display_order"`
	gDto.Timestamps
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Description = model.Description
	r.ShortDescription = model.ShortDescription
	r.Icon = model.Icon
	r.ImageURL = model.ImageURL
	r.Features = []string(model.Features)
	r.IsFeatured = model.IsFeatured
	r.DisplayOrder = model.DisplayOrder
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
