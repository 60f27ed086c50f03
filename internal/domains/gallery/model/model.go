package model

import "saylamc/shared/model"

const (
	TableName  = "gallery_images"
	EntityName = "gallery"

	FieldID           = "id"
	FieldCategory     = "category"
	FieldDisplayOrder = "display_order"
)

type GalleryImage struct {
	ID           int64  `db:"id"`
	Title        string `db:"title"`
	ImageURL     string `db:"image_url"`
	ThumbnailURL string `db:"thumbnail_url"`
	Category     string `db:"category"`
	Description  string `db:"description"`
	DisplayOrder int    `db:"display_order"`
	model.Timestamps
}
