package model

import "saylamc/shared/model"

const (
	TableName  = "site_settings"
	EntityName = "site_setting"

	FieldID        = "id"
	FieldSingleton = "singleton"
)

// SiteSetting is a singleton: the singleton column is always true and
// carries a unique constraint, so at most one row can ever exist.
type SiteSetting struct {
	ID              int64  `db:"id"`
	SiteName        string `db:"site_name"`
	SiteTagline     string `db:"site_tagline"`
	SiteDescription string `db:"site_description"`
	ContactEmail    string `db:"contact_email"`
	ContactPhone    string `db:"contact_phone"`
	ContactWhatsapp string `db:"contact_whatsapp"`
	ContactAddress  string `db:"contact_address"`
	SocialFacebook  string `db:"social_facebook"`
	SocialInstagram string `db:"social_instagram"`
	SocialTwitter   string `db:"social_twitter"`
	SocialYoutube   string `db:"social_youtube"`
	LogoURL         string `db:"logo_url"`
	FaviconURL      string `db:"favicon_url"`
	Singleton       bool   `db:"singleton"`
	model.Timestamps
}
