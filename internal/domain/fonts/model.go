package fonts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SourceSystem = "system"
	SourceGoogle = "google"
	SourceUpload = "upload"
)

// Font is a catalog entry referenced by weak id from section, content and
// card typography fields. System fonts ship with the app and are never
// deletable.
type Font struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`

	Source     string `gorm:"not null;default:'system'" json:"source"`
	FontFamily string `gorm:"not null" json:"font_family"`

	URL      *string `gorm:"column:url" json:"url"`       // google fonts stylesheet
	FilePath *string `gorm:"column:file_path" json:"file_path"` // uploaded font file

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Font) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
