package fonts

import (
	"net/http"

	"vitrine-app/database"
	"vitrine-app/internal/domain/fonts"

	"github.com/gin-gonic/gin"
)

// GET /admin/fonts
func ListFontsHandler(c *gin.Context) {
	rows, err := ListFonts(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load fonts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fonts": rows})
}

// POST /admin/fonts
func CreateFontHandler(c *gin.Context) {
	var req struct {
		Name       string  `json:"name" binding:"required"`
		Source     string  `json:"source"`
		FontFamily string  `json:"font_family" binding:"required"`
		URL        *string `json:"url"`
		FilePath   *string `json:"file_path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := fonts.Font{
		Name:       req.Name,
		Source:     req.Source,
		FontFamily: req.FontFamily,
		URL:        req.URL,
		FilePath:   req.FilePath,
	}
	if err := CreateFont(database.DB, &f); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create font", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// PATCH /admin/fonts/:id
func UpdateFontHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := UpdateFont(database.DB, c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update font", "details": err.Error()})
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Font not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// DELETE /admin/fonts/:id
func DeleteFontHandler(c *gin.Context) {
	ok, err := DeleteFont(database.DB, c.Param("id"))
	if err == ErrSystemFont {
		c.JSON(http.StatusForbidden, gin.H{"error": "System fonts cannot be deleted"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete font"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Font not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
