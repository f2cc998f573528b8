package social

import (
	"net/http"

	"vitrine-app/database"
	"vitrine-app/internal/domain/social"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListVisibleSocialLinks feeds the public page: visible links only, ordered.
func ListVisibleSocialLinks(db *gorm.DB) ([]social.SocialLink, error) {
	var rows []social.SocialLink
	if err := db.Where("is_visible = ?", true).
		Order("position ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func ListSocialLinks(db *gorm.DB) ([]social.SocialLink, error) {
	var rows []social.SocialLink
	if err := db.Order("position ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GET /admin/social-links
func ListSocialLinksHandler(c *gin.Context) {
	rows, err := ListSocialLinks(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load social links"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_links": rows})
}

// POST /admin/social-links
func CreateSocialLinkHandler(c *gin.Context) {
	var req struct {
		Platform  string  `json:"platform" binding:"required"`
		URL       string  `json:"url" binding:"required"`
		Label     *string `json:"label"`
		Position  int     `json:"position"`
		IsVisible *bool   `json:"is_visible"`
		Location  string  `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link := social.SocialLink{
		Platform:  req.Platform,
		URL:       req.URL,
		Label:     req.Label,
		Position:  req.Position,
		IsVisible: true,
		Location:  req.Location,
	}
	if req.IsVisible != nil {
		link.IsVisible = *req.IsVisible
	}
	if link.Location == "" {
		link.Location = social.LocationFooter
	}

	if err := database.DB.Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create social link", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, link)
}

// PATCH /admin/social-links/:id
func UpdateSocialLinkHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if socialColumns[k] {
			updates[k] = v
		}
	}
	if len(updates) > 0 {
		res := database.DB.Model(&social.SocialLink{}).
			Where("id = ?", c.Param("id")).
			Updates(updates)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update social link", "details": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
			return
		}
	}

	var link social.SocialLink
	if err := database.DB.First(&link, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		return
	}
	c.JSON(http.StatusOK, link)
}

// DELETE /admin/social-links/:id
func DeleteSocialLinkHandler(c *gin.Context) {
	res := database.DB.Delete(&social.SocialLink{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete social link"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

var socialColumns = map[string]bool{
	"platform":   true,
	"url":        true,
	"label":      true,
	"position":   true,
	"is_visible": true,
	"location":   true,
}
