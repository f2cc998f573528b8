package settings

import (
	"time"

	"vitrine-app/internal/domain/fonts"
)

// PageSettings stores site-wide theme settings managed via the admin panel.
// There should be only one row (singleton pattern).
type PageSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteTitle       string  `gorm:"not null;default:'Vitrine'" json:"site_title"`
	MetaDescription *string `json:"meta_description"`
	FaviconURL      *string `gorm:"column:favicon_url" json:"favicon_url"`

	TitleFontID *string     `gorm:"type:uuid" json:"title_font_id"`
	TextFontID  *string     `gorm:"type:uuid" json:"text_font_id"`
	TitleFont   *fonts.Font `gorm:"foreignKey:TitleFontID;constraint:OnDelete:SET NULL;" json:"title_font,omitempty"`
	TextFont    *fonts.Font `gorm:"foreignKey:TextFontID;constraint:OnDelete:SET NULL;" json:"text_font,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PageSettings) TableName() string { return "page_settings" }
