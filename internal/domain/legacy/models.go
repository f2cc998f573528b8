package legacy

import (
	"encoding/json"
	"time"
)

// Legacy blocks/cards schema. Kept read-only for backward compatibility and
// as the migration source; it is not extended further.

const (
	BlockHeader  = "header"
	BlockFooter  = "footer"
	BlockDefault = "default"
)

type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type     string  `gorm:"not null;default:'default'" json:"type"`
	Title    *string `json:"title"`
	Position int     `gorm:"not null;default:0;index" json:"position"`

	BgColor       *string `json:"bg_color"`
	BgImage       *string `json:"bg_image"`
	IsTransparent bool    `gorm:"not null;default:false" json:"is_transparent"`

	CreatedAt time.Time `json:"created_at"`
}

func (Block) TableName() string { return "blocks" }

type Card struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	BlockID uint `gorm:"not null;index" json:"block_id"`

	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `gorm:"column:image_url" json:"image_url"`
	LinkURL     *string `gorm:"column:link_url" json:"link_url"`

	// rendering hint from the old admin: "photo", "video", "text", ...
	Template *string `json:"template"`

	Position int `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}

func (Card) TableName() string { return "cards" }

type FooterElement struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	BlockID uint `gorm:"not null;index" json:"block_id"`

	Type     string          `gorm:"not null" json:"type"` // text | contact | social
	Content  json.RawMessage `gorm:"type:jsonb" json:"content"`
	Position int             `gorm:"not null;default:0" json:"position"`
}

func (FooterElement) TableName() string { return "footer_elements" }

type Page struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       *string `json:"title"`
	Description *string `json:"description"`
	FaviconURL  *string `gorm:"column:favicon_url" json:"favicon_url"`
}

func (Page) TableName() string { return "page" }
