package model

import (
	"github.com/lib/pq"

	"saylamc/shared/model"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID           = "id"
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldIsFeatured   = "is_featured"
	FieldDisplayOrder = "display_order"
)

type Package struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	Description  string         `db:"description"`
	Price        float64        `db:"price"`
	Duration     string         `db:"duration"`
	Features     pq.StringArray `db:"features"`
	IsPopular    bool           `db:"is_popular"`
	IsFeatured   bool           `db:"is_featured"`
	DisplayOrder int            `db:"display_order"`
	model.Timestamps
}
