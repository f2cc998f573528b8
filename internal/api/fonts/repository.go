package fonts

import (
	"errors"

	"vitrine-app/internal/domain/fonts"

	"gorm.io/gorm"
)

// ErrSystemFont marks an attempt to delete a built-in font.
var ErrSystemFont = errors.New("system fonts cannot be deleted")

func ListFonts(db *gorm.DB) ([]fonts.Font, error) {
	var rows []fonts.Font
	if err := db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func GetFontByID(db *gorm.DB, id string) (*fonts.Font, error) {
	var f fonts.Font
	err := db.First(&f, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func CreateFont(db *gorm.DB, f *fonts.Font) error {
	if f.Source == "" {
		f.Source = fonts.SourceSystem
	}
	return db.Create(f).Error
}

func UpdateFont(db *gorm.DB, id string, fields map[string]interface{}) (*fonts.Font, error) {
	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if fontColumns[k] {
			updates[k] = v
		}
	}
	if len(updates) > 0 {
		res := db.Model(&fonts.Font{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return GetFontByID(db, id)
}

// DeleteFont removes a google/upload font. Typography references on
// sections, content and cards are weak; the store nulls them out via its
// SET NULL constraints. System fonts are refused.
func DeleteFont(db *gorm.DB, id string) (bool, error) {
	f, err := GetFontByID(db, id)
	if err != nil {
		return false, err
	}
	if f == nil {
		return false, nil
	}
	if f.Source == fonts.SourceSystem {
		return false, ErrSystemFont
	}

	res := db.Delete(&fonts.Font{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var fontColumns = map[string]bool{
	"name":        true,
	"source":      true,
	"font_family": true,
	"url":         true,
	"file_path":   true,
}
