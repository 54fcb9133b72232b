package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/httperr"
)

// RequireAdmin gates admin-only routes. It runs after Auth, so a missing
// flag means a valid non-admin token: 403, not 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxIsAdmin) {
			httperr.Respond(c, httperr.Forbidden("Admin privileges required"))
			return
		}
		c.Next()
	}
}
