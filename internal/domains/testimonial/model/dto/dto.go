package dto

import (
	"saylamc/internal/domains/testimonial/model"
	"saylamc/shared/constant"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type CreateTestimonialRequest struct {
	ClientName      string `json:"client_name" validate:"required,max=255"`
	ClientPosition  string `json:"client_position" validate:"omitempty,max=255"`
	ClientCompany   string `json:"client_company" validate:"omitempty,max=255"`
	ClientPhotoURL  string `json:"client_photo_url" validate:"omitempty,max=500"`
	TestimonialText string `json:"testimonial_text" validate:"required"`
	Rating          int    `json:"rating" validate:"required,gte=1,lte=5"`
	EventType       string `json:"event_type" validate:"omitempty,max=100"`
	EventDate       string `json:"event_date" validate:"omitempty,max=100"`
	IsFeatured      bool   `json:"is_featured"`
	DisplayOrder    int    `json:"display_order" validate:"omitempty,gte=0"`
}

func (c *CreateTestimonialRequest) ToModel() model.Testimonial {
	return model.Testimonial{
		ClientName:      c.ClientName,
		ClientPosition:  c.ClientPosition,
		ClientCompany:   c.ClientCompany,
		ClientPhotoURL:  c.ClientPhotoURL,
		TestimonialText: c.TestimonialText,
		Rating:          c.Rating,
		EventType:       c.EventType,
		EventDate:       c.EventDate,
		IsFeatured:      c.IsFeatured,
		DisplayOrder:    c.DisplayOrder,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// UpdateTestimonialRequest overwrites the full row, zero values included.
type UpdateTestimonialRequest struct {
	ClientName      string `json:"client_name" validate:"required,max=255"`
	ClientPosition  string `json:"client_position" validate:"omitempty,max=255"`
	ClientCompany   string `json:"client_company" validate:"omitempty,max=255"`
	ClientPhotoURL  string `json:"client_photo_url" validate:"omitempty,max=500"`
	TestimonialText string `json:"testimonial_text" validate:"required"`
	Rating          int    `json:"rating" validate:"required,gte=1,lte=5"`
	EventType       string `json:"event_type" validate:"omitempty,max=100"`
	EventDate       string `json:"event_date" validate:"omitempty,max=100"`
	IsFeatured      bool   `json:"is_featured"`
	DisplayOrder    int    `json:"display_order" validate:"omitempty,gte=0"`
}

func (u *UpdateTestimonialRequest) ToFields() map[string]any {
	return map[string]any{
		"client_name":      u.ClientName,
		"client_position":  u.ClientPosition,
		"client_company":   u.ClientCompany,
		"client_photo_url": u.ClientPhotoURL,
		"testimonial_text": u.TestimonialText,
		"rating":           u.Rating,
		"event_type":       u.EventType,
		"event_date":       u.EventDate,
		"is_featured":      u.IsFeatured,
		"display_order":    u.DisplayOrder,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type TestimonialResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"client_name"`
	ClientPosition  string `json:"client_position"`
	ClientCompany   string `json:"client_company"`
	ClientPhotoURL  string `json:"client_photo_url"`
	TestimonialText string `json:"testimonial_text"`
	Rating          int    `json:"rating"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	IsFeatured      bool   `json:"is_featured"`
	DisplayOrder    int    `json:"display_order"`
	gDto.Timestamps
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.ClientPosition = model.ClientPosition
	r.ClientCompany = model.ClientCompany
	r.ClientPhotoURL = model.ClientPhotoURL
	r.TestimonialText = model.TestimonialText
	r.Rating = model.Rating
	r.EventType = model.EventType
	r.EventDate = model.EventDate
	r.IsFeatured = model.IsFeatured
	r.DisplayOrder = model.DisplayOrder
	r.Timestamps.FromModel(model.Timestamps)
}

func FromModels(models []model.Testimonial) []TestimonialResponse {
	responses := make([]TestimonialResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
