package settings

import (
	"net/http"

	"vitrine-app/database"
	"vitrine-app/internal/domain/settings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSettings loads the singleton settings row with its font joins, creating
// it with defaults on first access.
func GetSettings(db *gorm.DB) (*settings.PageSettings, error) {
	var s settings.PageSettings
	err := db.Preload("TitleFont").Preload("TextFont").First(&s).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	s = settings.PageSettings{SiteTitle: "Vitrine"}
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func UpdateSettings(db *gorm.DB, fields map[string]interface{}) (*settings.PageSettings, error) {
	current, err := GetSettings(db)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if settingsColumns[k] {
			updates[k] = v
		}
	}
	if len(updates) > 0 {
		if err := db.Model(&settings.PageSettings{}).
			Where("id = ?", current.ID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetSettings(db)
}

// GET /admin/settings
func GetSettingsHandler(c *gin.Context) {
	s, err := GetSettings(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// PATCH /admin/settings
func UpdateSettingsHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := UpdateSettings(database.DB, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

var settingsColumns = map[string]bool{
	"site_title":       true,
	"meta_description": true,
	"favicon_url":      true,
	"title_font_id":    true,
	"text_font_id":     true,
}
