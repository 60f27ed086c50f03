package model

import (
	"github.com/lib/pq"

	"saylamc/shared/model"
)

const (
	TableName  = "portfolio_items"
	EntityName = "portfolio"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldSlug         = "slug"
	FieldIsFeatured   = "is_featured"
	FieldDisplayOrder = "display_order"
)

type Portfolio struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	Slug          string         `db:"slug"`
	EventType     string         `db:"event_type"`
	EventDate     string         `db:"event_date"`
	ClientName    string         `db:"client_name"`
	Description   string         `db:"description"`
	ImageURL      string         `db:"image_url"`
	GalleryImages pq.StringArray `db:"gallery_images"`
	VideoURL      string         `db:"video_url"`
	IsFeatured    bool           `db:"is_featured"`
	DisplayOrder  int            `db:"display_order"`
	model.Timestamps
}
