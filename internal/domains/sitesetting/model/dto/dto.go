package dto

import (
	"saylamc/internal/domains/sitesetting/model"
	gDto "saylamc/shared/dto"
	gModel "saylamc/shared/model"
	"saylamc/shared/timezone"
)

type UpsertSiteSettingRequest struct {
	SiteName        string `json:"site_name" validate:"required,max=255"`
	SiteTagline     string `json:"site_tagline" validate:"omitempty,max=255"`
	SiteDescription string `json:"site_description" validate:"omitempty"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactPhone    string `json:"contact_phone" validate:"omitempty,max=50"`
	ContactWhatsapp string `json:"contact_whatsapp" validate:"omitempty,max=50"`
	ContactAddress  string `json:"contact_address" validate:"omitempty"`
	SocialFacebook  string `json:"social_facebook" validate:"omitempty,max=500"`
	SocialInstagram string `json:"social_instagram" validate:"omitempty,max=500"`
	SocialTwitter   string `json:"social_twitter" validate:"omitempty,max=500"`
	SocialYoutube   string `json:"social_youtube" validate:"omitempty,max=500"`
	LogoURL         string `json:"logo_url" validate:"omitempty,max=500"`
	FaviconURL      string `json:"favicon_url" validate:"omitempty,max=500"`
}

func (u *UpsertSiteSettingRequest) ToModel() model.SiteSetting {
	return model.SiteSetting{
		SiteName:        u.SiteName,
		SiteTagline:     u.SiteTagline,
		SiteDescription: u.SiteDescription,
		ContactEmail:    u.ContactEmail,
		ContactPhone:    u.ContactPhone,
		ContactWhatsapp: u.ContactWhatsapp,
		ContactAddress:  u.ContactAddress,
		SocialFacebook:  u.SocialFacebook,
		SocialInstagram: u.SocialInstagram,
		SocialTwitter:   u.SocialTwitter,
		SocialYoutube:   u.SocialYoutube,
		LogoURL:         u.LogoURL,
		FaviconURL:      u.FaviconURL,
		Singleton:       true,
		Timestamps: gModel.Timestamps{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type SiteSettingResponse struct {
	ID              int64  `json:"id"`
	SiteName        string `json:"site_name"`
	SiteTagline     string `json:"site_tagline"`
	SiteDescription string `json:"site_description"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	ContactWhatsapp string `json:"contact_whatsapp"`
	ContactAddress  string `json:"contact_address"`
	SocialFacebook  string `json:"social_facebook"`
	SocialInstagram string `json:"social_instagram"`
	SocialTwitter   string `json:"social_twitter"`
	SocialYoutube   string `json:"social_youtube"`
	LogoURL         string `json:"logo_url"`
	FaviconURL      string `json:"favicon_url"`
	gDto.Timestamps
}

func (r *SiteSettingResponse) FromModel(model model.SiteSetting) {
	r.ID = model.ID
	r.SiteName = model.SiteName
	r.SiteTagline = model.SiteTagline
	r.SiteDescription = model.SiteDescription
	r.ContactEmail = model.ContactEmail
	r.ContactPhone = model.ContactPhone
	r.ContactWhatsapp = model.ContactWhatsapp
	r.ContactAddress = model.ContactAddress
	r.SocialFacebook = model.SocialFacebook
	r.SocialInstagram = model.SocialInstagram
	r.SocialTwitter = model.SocialTwitter
	r.SocialYoutube = model.SocialYoutube
	r.LogoURL = model.LogoURL
	r.FaviconURL = model.FaviconURL
	r.Timestamps.FromModel(model.Timestamps)
}
