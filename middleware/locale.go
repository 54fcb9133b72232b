package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/models"
)

const CtxLocale = "locale"

// Locale validates the /:locale path prefix against the published languages
// and makes the value available to handlers. Unknown prefixes are a 404.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Param("locale")
		switch locale {
		case models.LangAr, models.LangEn, models.LangFr:
			c.Set(CtxLocale, locale)
			c.Next()
		default:
			httperr.Respond(c, httperr.NotFound("Unknown locale"))
		}
	}
}
