package routes

import (
	adminapi "vitrine-app/internal/api/admin"
	authapi "vitrine-app/internal/api/auth"
	decorationsapi "vitrine-app/internal/api/decorations"
	fontsapi "vitrine-app/internal/api/fonts"
	pageapi "vitrine-app/internal/api/page"
	sectionsapi "vitrine-app/internal/api/sections"
	settingsapi "vitrine-app/internal/api/settings"
	socialapi "vitrine-app/internal/api/social"
	"vitrine-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// the one public content endpoint, consumed by the renderer
	r.GET("/page", pageapi.GetHomePageHandler)

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.POST("/change-password", authapi.ChangePassword)

	admin.GET("/sections", sectionsapi.ListSectionsHandler)
	admin.GET("/sections/:id", sectionsapi.GetSectionHandler)
	admin.POST("/sections", sectionsapi.CreateSectionHandler)
	admin.PATCH("/sections/:id", sectionsapi.UpdateSectionHandler)
	admin.DELETE("/sections/:id", sectionsapi.DeleteSectionHandler)
	admin.PUT("/sections/reorder", sectionsapi.ReorderSectionsHandler)

	admin.POST("/sections/:id/content", sectionsapi.AddContentHandler)
	admin.PATCH("/content/:id", sectionsapi.UpdateContentHandler)
	admin.DELETE("/content/:id", sectionsapi.DeleteContentHandler)

	admin.POST("/sections/:id/cards", sectionsapi.AddCardHandler)
	admin.PATCH("/cards/:id", sectionsapi.UpdateCardHandler)
	admin.DELETE("/cards/:id", sectionsapi.DeleteCardHandler)

	admin.POST("/sections/:id/decorations", sectionsapi.AddDecorationHandler)
	admin.DELETE("/sections/:id/decorations", sectionsapi.RemoveDecorationHandler)

	admin.POST("/sections/:id/nav-links", sectionsapi.AddNavLinkHandler)
	admin.PATCH("/nav-links/:id", sectionsapi.UpdateNavLinkHandler)
	admin.DELETE("/nav-links/:id", sectionsapi.DeleteNavLinkHandler)

	admin.GET("/fonts", fontsapi.ListFontsHandler)
	admin.POST("/fonts", fontsapi.CreateFontHandler)
	admin.PATCH("/fonts/:id", fontsapi.UpdateFontHandler)
	admin.DELETE("/fonts/:id", fontsapi.DeleteFontHandler)

	admin.GET("/decorations", decorationsapi.ListDecorationsHandler)
	admin.POST("/decorations", decorationsapi.CreateDecorationHandler)
	admin.PATCH("/decorations/:id", decorationsapi.UpdateDecorationHandler)
	admin.DELETE("/decorations/:id", decorationsapi.DeleteDecorationHandler)

	admin.GET("/social-links", socialapi.ListSocialLinksHandler)
	admin.POST("/social-links", socialapi.CreateSocialLinkHandler)
	admin.PATCH("/social-links/:id", socialapi.UpdateSocialLinkHandler)
	admin.DELETE("/social-links/:id", socialapi.DeleteSocialLinkHandler)

	admin.GET("/settings", settingsapi.GetSettingsHandler)
	admin.PATCH("/settings", settingsapi.UpdateSettingsHandler)

	admin.POST("/migrate-legacy", adminapi.MigrateLegacyHandler)
}
