package dto

import (
	"saylamc/internal/domains/homepage/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreateHomepageSectionRequest struct {
	SectionType     string `json:"section_type" validate:"required,max=100"`
	SectionTitle    string `json:"section_title" validate:"omitempty,max=255"`
	SectionSubtitle string `json:"section_subtitle" validate:"omitempty,max=255"`
	SectionContent  string `json:"section_content" validate:"omitempty"`
	ImageURL        string `json:"image_url" validate:"omitempty,max=500"`
	ButtonText      string `json:"button_text" validate:"omitempty,max=100"`
	ButtonLink      string `json:"button_link" validate:"omitempty,max=500"`
	BackgroundColor string `json:"background_color" validate:"omitempty,max=50"`
	TextColor       string `json:"text_color" validate:"omitempty,max=50"`
	SectionOrder    int    `json:"section_order" validate:"omitempty,gte=0"`
	IsVisible       *bool  `json:"is_visible" validate:"omitempty"`
}

// Visibility defaults to true when the caller leaves it unset.
func (c *CreateHomepageSectionRequest) ToModel() model.HomepageSection {
	isVisible := true
	if c.IsVisible != nil {
		isVisible = *c.IsVisible
	}

	return model.HomepageSection{
		SectionType:     c.SectionType,
		SectionTitle:    c.SectionTitle,
		SectionSubtitle: c.SectionSubtitle,
		SectionContent:  c.SectionContent,
		ImageURL:        c.ImageURL,
		ButtonText:      c.ButtonText,
		ButtonLink:      c.ButtonLink,
		BackgroundColor: c.BackgroundColor,
		TextColor:       c.TextColor,
		SectionOrder:    c.SectionOrder,
		IsVisible:       isVisible,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdateHomepageSectionRequest overwrites the full row, zero values included.
type UpdateHomepageSectionRequest struct {
	SectionType     string `json:"section_type" validate:"required,max=100"`
	SectionTitle    string `json:"section_title" validate:"omitempty,max=255"`
	SectionSubtitle string `json:"section_subtitle" validate:"omitempty,max=255"`
	SectionContent  string `json:"section_content" validate:"omitempty"`
	ImageURL        string `json:"image_url" validate:"omitempty,max=500"`
	ButtonText      string `json:"button_text" validate:"omitempty,max=100"`
	ButtonLink      string `json:"button_link" validate:"omitempty,max=500"`
	BackgroundColor string `json:"background_color" validate:"omitempty,max=50"`
	TextColor       string `json:"text_color" validate:"omitempty,max=50"`
	SectionOrder    int    `json:"section_order" validate:"omitempty,gte=0"`
	IsVisible       bool   `json:"is_visible"`
}

func (u *UpdateHomepageSectionRequest) ToFields() map[string]any {
	return map[string]any{
		"section_type":     u.SectionType,
		"section_title":    u.SectionTitle,
		"section_subtitle": u.SectionSubtitle,
		"section_content":  u.SectionContent,
		"image_url":        u.ImageURL,
		"button_text":      u.ButtonText,
		"button_link":      u.ButtonLink,
		"background_color": u.BackgroundColor,
		"text_color":       u.TextColor,
		"section_order":    u.SectionOrder,
		"is_visible":       u.IsVisible,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type ReorderSectionItem struct {
	ID           int64 `json:"id" validate:"required"`
	SectionOrder int   `json:"section_order" validate:"gte=0"`
}

type ReorderSectionsRequest struct {
	Sections []ReorderSectionItem `json:"sections" validate:"required,min=1,dive"`
}

type HomepageSectionResponse struct {
	ID              int64  `json:"id"`
	SectionType     string `json:"section_type"`
	SectionTitle    string `json:"section_title"`
	SectionSubtitle string `json:"section_subtitle"`
	SectionContent  string `json:"section_content"`
	ImageURL        string `json:"image_url"`
	ButtonText      string `json:"button_text"`
	ButtonLink      string `json:"button_link"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	SectionOrder    int    `json:"section_order"`
	IsVisible       bool   `json:"is_visible"`
	gDto.Timestamps
}

func (r *HomepageSectionResponse) FromModel(model model.HomepageSection) {
	r.ID = model.ID
	r.SectionType = model.SectionType
	r.SectionTitle = model.SectionTitle
	r.SectionSubtitle = model.SectionSubtitle
	r.SectionContent = model.SectionContent
	r.ImageURL = model.ImageURL
	r.ButtonText = model.ButtonText
	r.ButtonLink = model.ButtonLink
	r.BackgroundColor = model.BackgroundColor
	r.TextColor = model.TextColor
	r.SectionOrder = model.SectionOrder
	r.IsVisible = model.IsVisible
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.HomepageSection) []HomepageSectionResponse {
	responses := make([]HomepageSectionResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
