package sections

import (
	"net/http"

	"vitrine-app/database"
	"vitrine-app/internal/domain/sections"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /admin/sections
// ------------------------------
func ListSectionsHandler(c *gin.Context) {
	rows, err := ListSections(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": rows})
}

// ------------------------------
// GET /admin/sections/:id
// ------------------------------
func GetSectionHandler(c *gin.Context) {
	s, err := GetSectionByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load section"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ------------------------------
// POST /admin/sections
// ------------------------------
func CreateSectionHandler(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := req.toModel()
	if err := CreateSection(database.DB, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ------------------------------
// PATCH /admin/sections/:id
// ------------------------------
// The body is a plain field->value map so that a missing key and an explicit
// null stay distinguishable all the way down to the store.
func UpdateSectionHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := UpdateSection(database.DB, c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section", "details": err.Error()})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ------------------------------
// DELETE /admin/sections/:id
// ------------------------------
func DeleteSectionHandler(c *gin.Context) {
	ok, err := DeleteSection(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// PUT /admin/sections/reorder
// ------------------------------
func ReorderSectionsHandler(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ReorderSections(database.DB, req.SectionIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder sections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// POST /admin/sections/:id/content
// ------------------------------
func AddContentHandler(c *gin.Context) {
	var req AddContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := req.toModel()
	if err := AddSectionContent(database.DB, c.Param("id"), &content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add content", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, content)
}

// ------------------------------
// PATCH /admin/content/:id
// ------------------------------
func UpdateContentHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := UpdateSectionContent(database.DB, c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content", "details": err.Error()})
		return
	}
	if content == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// ------------------------------
// DELETE /admin/content/:id
// ------------------------------
func DeleteContentHandler(c *gin.Context) {
	ok, err := DeleteSectionContent(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /admin/sections/:id/cards
// ------------------------------
func AddCardHandler(c *gin.Context) {
	var req AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := req.toModel()
	if err := AddSectionCard(database.DB, c.Param("id"), &card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add card", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}

// ------------------------------
// PATCH /admin/cards/:id
// ------------------------------
func UpdateCardHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := UpdateSectionCard(database.DB, c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card", "details": err.Error()})
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// ------------------------------
// DELETE /admin/cards/:id
// ------------------------------
func DeleteCardHandler(c *gin.Context) {
	ok, err := DeleteSectionCard(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /admin/sections/:id/decorations  (upsert per placement)
// ------------------------------
func AddDecorationHandler(c *gin.Context) {
	var req AddDecorationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := sections.SectionDecoration{
		DecorationID: req.DecorationID,
		Position:     req.Position,
		Color:        req.Color,
		Opacity:      req.Opacity,
		Scale:        req.Scale,
		ZIndex:       req.ZIndex,
	}
	if err := AddSectionDecoration(database.DB, c.Param("id"), &d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place decoration", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /admin/sections/:id/decorations
// ------------------------------
func RemoveDecorationHandler(c *gin.Context) {
	var req RemoveDecorationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := RemoveSectionDecoration(database.DB, c.Param("id"), req.DecorationID, req.Position)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove decoration"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decoration placement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /admin/sections/:id/nav-links
// ------------------------------
func AddNavLinkHandler(c *gin.Context) {
	var req AddNavLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link := sections.HeroNavLink{
		TargetSectionID: req.TargetSectionID,
		Label:           req.Label,
		Position:        req.Position,
		IsVisible:       true,
	}
	if req.IsVisible != nil {
		link.IsVisible = *req.IsVisible
	}
	if err := AddHeroNavLink(database.DB, c.Param("id"), &link); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add nav link", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, link)
}

// ------------------------------
// PATCH /admin/nav-links/:id
// ------------------------------
func UpdateNavLinkHandler(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := UpdateHeroNavLink(database.DB, c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update nav link", "details": err.Error()})
		return
	}
	if link == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nav link not found"})
		return
	}
	c.JSON(http.StatusOK, link)
}

// ------------------------------
// DELETE /admin/nav-links/:id
// ------------------------------
func DeleteNavLinkHandler(c *gin.Context) {
	ok, err := DeleteHeroNavLink(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete nav link"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nav link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
