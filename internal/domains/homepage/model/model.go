package model

import "saylamc/shared/model"

const (
	TableName  = "homepage_sections"
	EntityName = "homepage_section"

	FieldID           = "id"
	FieldSectionOrder = "section_order"
	FieldIsVisible    = "is_visible"
)

type HomepageSection struct {
	ID              int64  `db:"id"`
	SectionType     string `db:"section_type"`
	SectionTitle    string `db:"section_title"`
	SectionSubtitle string `db:"section_subtitle"`
	SectionContent  string `db:"section_content"`
	ImageURL        string `db:"image_url"`
	ButtonText      string `db:"button_text"`
	ButtonLink      string `db:"button_link"`
	BackgroundColor string `db:"background_color"`
	TextColor       string `db:"text_color"`
	SectionOrder    int    `db:"section_order"`
	IsVisible       bool   `db:"is_visible"`
	model.Timestamps
}
