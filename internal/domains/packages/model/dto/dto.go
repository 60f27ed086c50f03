package dto

import (
	"github.com/lib/pq"

	"saylamc/internal/domains/packages/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreatePackageRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Slug         string   `json:"slug" validate:"required,max=255"`
	Description  string   `json:"description" validate:"omitempty"`
	Price        float64  `json:"price" validate:"omitempty,gte=0"`
	Duration     string   `json:"duration" validate:"omitempty,max=100"`
	Features     []string `json:"features" validate:"omitempty"`
	IsPopular    bool     `json:"is_popular"`
	IsFeatured   bool     `json:"is_featured"`
	DisplayOrder int      `json:"display_order" validate:"omitempty,gte=0"`
}

func (c *CreatePackageRequest) ToModel() model.Package {
	return model.Package{
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Price:        c.Price,
		Duration:     c.Duration,
		Features:     pq.StringArray(c.Features),
		IsPopular:    c.IsPopular,
		IsFeatured:   c.IsFeatured,
		DisplayOrder: c.DisplayOrder,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdatePackageRequest overwrites the full row, zero values included.
type UpdatePackageRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Slug         string   `json:"slug" validate:"required,max=255"`
	Description  string   `json:"description" validate:"omitempty"`
	Price        float64  `json:"price" validate:"omitempty,gte=0"`
	Duration     string   `json:"duration" validate:"omitempty,max=100"`
	Features     []string `json:"features" validate:"omitempty"`
	IsPopular    bool     `json:"is_popular"`
	IsFeatured   bool     `json:"is_featured"`
	DisplayOrder int      `json:"display_order" validate:"omitempty,gte=0"`
}

func (u *UpdatePackageRequest) ToFields() map[string]any {
	return map[string]any{
		"name":          u.Name,
		"slug":          u.Slug,
		"description":   u.Description,
		"price":         u.Price,
		"duration":      u.Duration,
		"features":      pq.StringArray(u.Features),
		"is_popular":    u.IsPopular,
		"is_featured":   u.IsFeatured,
		"display_order": u.DisplayOrder,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type PackageResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Duration     string   `json:"duration"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"is_popular"`
	IsFeatured   bool     `json:"is_featured"`
	DisplayOrder int      `json:"display_order"`
	gDto.Timestamps
}

func (r *PackageResponse) FromModel(model model.Package) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Price = model.Price
	r.Duration = model.Duration
	r.Features = []string(model.Features)
	r.IsPopular = model.IsPopular
	r.IsFeatured = model.IsFeatured
	r.DisplayOrder = model.DisplayOrder
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Package) []PackageResponse {
	responses := make([]PackageResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
