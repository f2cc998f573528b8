package sections

import (
	"time"

	"vitrine-app/internal/domain/fonts"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeHero     = "hero"
	TypeContent  = "content"
	TypeCardGrid = "card_grid"
	TypeGallery  = "gallery"
	TypeFooter   = "footer"
)

const (
	PaddingNone   = "none"
	PaddingSmall  = "small"
	PaddingMedium = "medium"
	PaddingLarge  = "large"
)

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Section is one positioned region of the home page. `position` is not
// unique; visible sections render by position ASC with NULLs last, id as
// tiebreak.
type Section struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type      string  `gorm:"type:text;not null;index" json:"type"`
	Title     *string `json:"title"`
	Position  *int    `gorm:"index" json:"position"`
	IsVisible bool    `gorm:"not null;default:true" json:"is_visible"`

	BgColor       *string `json:"bg_color"`
	BgImage       *string `json:"bg_image"`
	BgVideo       *string `json:"bg_video"`
	YoutubeID     *string `gorm:"column:youtube_id" json:"youtube_id"`
	IsTransparent bool    `gorm:"not null;default:false" json:"is_transparent"`

	Layout        *string `json:"layout"`
	PaddingTop    string  `gorm:"not null;default:'medium'" json:"padding_top"`
	PaddingBottom string  `gorm:"not null;default:'medium'" json:"padding_bottom"`

	TitleFontID    *string     `gorm:"type:uuid" json:"title_font_id"`
	SubtitleFontID *string     `gorm:"type:uuid" json:"subtitle_font_id"`
	TextFontID     *string     `gorm:"type:uuid" json:"text_font_id"`
	TitleFont      *fonts.Font `gorm:"foreignKey:TitleFontID;constraint:OnDelete:SET NULL;" json:"title_font,omitempty"`
	SubtitleFont   *fonts.Font `gorm:"foreignKey:SubtitleFontID;constraint:OnDelete:SET NULL;" json:"subtitle_font,omitempty"`
	TextFont       *fonts.Font `gorm:"foreignKey:TextFontID;constraint:OnDelete:SET NULL;" json:"text_font,omitempty"`

	TitleColor    *string `json:"title_color"`
	SubtitleColor *string `json:"subtitle_color"`
	TextColor     *string `json:"text_color"`
	AccentColor   *string `json:"accent_color"`

	BorderRadius *string `json:"border_radius"`
	Shadow       *string `json:"shadow"`

	// header-only fields, ignored by the view for other types
	LogoURL        *string `gorm:"column:logo_url" json:"logo_url"`
	LogoWidth      *int    `json:"logo_width"`
	LogoPosition   *string `json:"logo_position"`
	ShowSocial     bool    `gorm:"not null;default:false" json:"show_social"`
	SocialPosition *string `json:"social_position"`
	SocialSize     *string `json:"social_size"`
	SocialColor    *string `json:"social_color"`
	ShowNav        bool    `gorm:"not null;default:false" json:"show_nav"`
	NavPosition    *string `json:"nav_position"`
	NavColor       *string `json:"nav_color"`
	NavHoverColor  *string `json:"nav_hover_color"`
	IsSticky       bool    `gorm:"not null;default:false" json:"is_sticky"`

	Content     []SectionContent    `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"content"`
	Cards       []Card              `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"cards,omitempty"`
	Decorations []SectionDecoration `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"decorations"`
	NavLinks    []HeroNavLink       `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;" json:"nav_links,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// HasCards reports whether this section type owns card rows.
func (s *Section) HasCards() bool {
	return s.Type == TypeCardGrid || s.Type == TypeGallery
}
