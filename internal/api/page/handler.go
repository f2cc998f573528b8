package page

import (
	"net/http"

	"vitrine-app/config"
	"vitrine-app/database"

	"github.com/gin-gonic/gin"
)

// GET /page — the single public content endpoint. The strategy flag is read
// here and nowhere else.
func GetHomePageHandler(c *gin.Context) {
	if config.USE_LEGACY_BLOCKS {
		c.JSON(http.StatusOK, AssembleLegacyHome(database.DB))
		return
	}
	c.JSON(http.StatusOK, AssembleHome(database.DB))
}
