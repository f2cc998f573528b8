package admin

import (
	"net/http"

	"vitrine-app/database"
	"vitrine-app/internal/domain/decorations"
	"vitrine-app/internal/domain/fonts"
	"vitrine-app/internal/domain/sections"
	"vitrine-app/internal/migration"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalSections    int64 `json:"total_sections"`
	VisibleSections  int64 `json:"visible_sections"`
	TotalFonts       int64 `json:"total_fonts"`
	TotalDecorations int64 `json:"total_decorations"`
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	if err := database.DB.Model(&sections.Section{}).Count(&stats.TotalSections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	database.DB.Model(&sections.Section{}).Where("is_visible = ?", true).Count(&stats.VisibleSections)
	database.DB.Model(&fonts.Font{}).Count(&stats.TotalFonts)
	database.DB.Model(&decorations.Decoration{}).Count(&stats.TotalDecorations)

	c.JSON(http.StatusOK, stats)
}

// POST /admin/migrate-legacy — manual, out-of-band trigger for the
// blocks→sections migration. The legacy tables stay untouched.
func MigrateLegacyHandler(c *gin.Context) {
	created, err := migration.RunLegacyMigration(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Migration failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sections_created": created})
}
