package sections

import (
	"time"

	"vitrine-app/internal/domain/decorations"
	"vitrine-app/internal/domain/fonts"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaSizeSmall  = "small"
	MediaSizeMedium = "medium"
	MediaSizeLarge  = "large"
)

const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// SectionContent is an ordered text/media fragment owned by a hero, content
// or footer section. It never outlives its section.
type SectionContent struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID string `gorm:"type:uuid;not null;index:idx_section_content_order,priority:1" json:"section_id"`

	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`

	CtaLabel *string `json:"cta_label"`
	CtaURL   *string `gorm:"column:cta_url" json:"cta_url"`

	MediaURL  *string `gorm:"column:media_url" json:"media_url"`
	MediaType *string `json:"media_type"`
	MediaAlt  *string `json:"media_alt"`
	MediaSize string  `gorm:"not null;default:'medium'" json:"media_size"`

	TextColor *string `json:"text_color"`
	TextAlign string  `gorm:"not null;default:'left'" json:"text_align"`
	BgColor   *string `json:"bg_color"`

	FontID *string     `gorm:"type:uuid" json:"font_id"`
	Font   *fonts.Font `gorm:"foreignKey:FontID;constraint:OnDelete:SET NULL;" json:"font,omitempty"`

	Position int `gorm:"not null;default:0;index:idx_section_content_order,priority:2" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SectionContent) TableName() string { return "section_content" }

func (c *SectionContent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Card is an ordered tile owned by a card_grid or gallery section.
type Card struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID string `gorm:"type:uuid;not null;index:idx_cards_v2_order,priority:1" json:"section_id"`

	Title       *string `json:"title"`
	Description *string `json:"description"`

	MediaURL  *string `gorm:"column:media_url" json:"media_url"`
	MediaType *string `json:"media_type"`

	LinkURL   *string `gorm:"column:link_url" json:"link_url"`
	BgColor   *string `json:"bg_color"`
	TextColor *string `json:"text_color"`

	// optional ISO date for event-style cards
	EventDate *string `json:"event_date"`

	Position int `gorm:"not null;default:0;index:idx_cards_v2_order,priority:2" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Card) TableName() string { return "cards_v2" }

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SectionDecoration places a catalog decoration on a section with
// per-placement overrides. At most one row per (section, decoration,
// position); re-adding the same triple overwrites the overrides.
type SectionDecoration struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID    string `gorm:"type:uuid;not null;uniqueIndex:idx_section_decoration_placement,priority:1" json:"section_id"`
	DecorationID string `gorm:"type:uuid;not null;uniqueIndex:idx_section_decoration_placement,priority:2" json:"decoration_id"`

	Decoration *decorations.Decoration `gorm:"foreignKey:DecorationID;constraint:OnDelete:CASCADE;" json:"decoration,omitempty"`

	Position string `gorm:"not null;default:'top-left';uniqueIndex:idx_section_decoration_placement,priority:3" json:"position"`

	Color   *string  `json:"color"`
	Opacity *float64 `json:"opacity"`
	Scale   *float64 `json:"scale"`
	ZIndex  int      `gorm:"not null;default:0" json:"z_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *SectionDecoration) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// HeroNavLink is a jump link shown in a hero section. The target is a weak
// reference: deleting the target section nulls it and the view skips the
// link.
type HeroNavLink struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID string `gorm:"type:uuid;not null;index" json:"section_id"`

	TargetSectionID *string  `gorm:"type:uuid" json:"target_section_id"`
	TargetSection   *Section `gorm:"foreignKey:TargetSectionID;constraint:OnDelete:SET NULL;" json:"-"`

	Label     string `gorm:"not null" json:"label"`
	Position  int    `gorm:"not null;default:0" json:"position"`
	IsVisible bool   `gorm:"not null;default:true" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *HeroNavLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
