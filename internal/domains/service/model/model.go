package model

import (
	"github.com/lib/pq"

	"saylamc/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldSlug         = "slug"
	FieldIsFeatured   = "is_featured"
	FieldDisplayOrder = "display_order"
)

type Service struct {
	ID               int64          `db:"id"`
	Title            string         `db:"title"`
	Slug             string         `db:"slug"`
	Description      string         `db:"description"`
	ShortDescription string         `db:"short_description"`
	Icon             string         `db:"icon"`
	ImageURL         string         `db:"image_url"`
	Features         pq.StringArray `db:"features"`
	IsFeatured       bool           `db:"is_featured"`
	DisplayOrder     int            `db:"display_order"`
	model.Timestamps
}
