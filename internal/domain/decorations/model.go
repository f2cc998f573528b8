package decorations

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Decoration is a reusable SVG ornament. Per-section placement and overrides
// live in section_decorations; the catalog row only carries defaults.
type Decoration struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Type string `gorm:"not null;index" json:"type"`

	SVG string `gorm:"column:svg;type:text;not null" json:"svg"`

	DefaultColor   *string `json:"default_color"`
	DefaultOpacity float64 `gorm:"not null;default:1" json:"default_opacity"`
	DefaultScale   float64 `gorm:"not null;default:1" json:"default_scale"`

	// JSON array of supported anchor positions, e.g. ["top-left","bottom-right"]
	Positions json.RawMessage `gorm:"type:jsonb" json:"positions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Decoration) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
