package decorations

import (
	"encoding/json"
	"net/http"

	"vitrine-app/database"
	"vitrine-app/internal/domain/decorations"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListDecorations(db *gorm.DB) ([]decorations.Decoration, error) {
	var rows []decorations.Decoration
	if err := db.Order("type ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GET /admin/decorations
func ListDecorationsHandler(c *gin.Context) {
	rows, err := ListDecorations(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load decorations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"decorations": rows})
}

// POST /admin/decorations
func CreateDecorationHandler(c *gin.Context) {
	var req struct {
		Name           string          `json:"name" binding:"required"`
		Type           string          `json:"type" binding:"required"`
		SVG            string          `json:"svg" binding:"required"`
		DefaultColor   *string         `json:"default_color"`
		DefaultOpacity *float64        `json:"default_opacity"`
		DefaultScale   *float64        `json:"default_scale"`
		Positions      json.RawMessage `json:"positions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := decorations.Decoration{
		Name:           req.Name,
		Type:           req.Type,
		SVG:            req.SVG,
		DefaultColor:   req.DefaultColor,
		DefaultOpacity: 1,
		DefaultScale:   1,
		Positions:      req.Positions,
	}
	if req.DefaultOpacity != nil {
		d.DefaultOpacity = *req.DefaultOpacity
	}
	if req.DefaultScale != nil {
		d.DefaultScale = *req.DefaultScale
	}

	if err := database.DB.Create(&d).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create decoration", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// PATCH /admin/decorations/:id
func UpdateDecorationHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if decorationColumns[k] {
			updates[k] = v
		}
	}
	if len(updates) > 0 {
		res := database.DB.Model(&decorations.Decoration{}).
			Where("id = ?", c.Param("id")).
			Updates(updates)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update decoration", "details": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Decoration not found"})
			return
		}
	}

	var d decorations.Decoration
	if err := database.DB.First(&d, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decoration not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// DELETE /admin/decorations/:id — placements cascade with the catalog row.
func DeleteDecorationHandler(c *gin.Context) {
	res := database.DB.Delete(&decorations.Decoration{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete decoration"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decoration not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

var decorationColumns = map[string]bool{
	"name":            true,
	"type":            true,
	"svg":             true,
	"default_color":   true,
	"default_opacity": true,
	"default_scale":   true,
	"positions":       true,
}
