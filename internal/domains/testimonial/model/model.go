package model

import "saylamc/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID           = "id"
	FieldIsFeatured   = "is_featured"
	FieldDisplayOrder = "display_order"
)

type Testimonial struct {
	ID              int64  `db:"id"`
	ClientName      string `db:"client_name"`
	ClientPosition  string `db:"client_position"`
	ClientCompany   string `db:"client_company"`
	ClientPhotoURL  string `db:"client_photo_url"`
	TestimonialText string `db:"testimonial_text"`
	Rating          int    `db:"rating"`
	EventType       string `db:"event_type"`
	EventDate       string `db:"event_date"`
	IsFeatured      bool   `db:"is_featured"`
	DisplayOrder    int    `db:"display_order"`
	model.Timestamps
}
