package social

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LocationFooter = "footer"
	LocationHeader = "header"
)

type SocialLink struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Platform string  `gorm:"not null" json:"platform"`
	URL      string  `gorm:"column:url;not null" json:"url"`
	Label    *string `json:"label"`

	Position  int    `gorm:"not null;default:0;index" json:"position"`
	IsVisible bool   `gorm:"not null;default:true" json:"is_visible"`
	Location  string `gorm:"not null;default:'footer'" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
