package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/utils"
)

// Context keys the auth middleware fills in for handlers.
const (
	CtxUserID  = "user_id"
	CtxIsAdmin = "is_admin"
)

// Auth requires a valid bearer token and stores the subject id and admin
// flag in the request context. Missing, malformed, expired and forged tokens
// all answer the same 401.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, httperr.Auth("Authorization required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Respond(c, httperr.Auth("Invalid Authorization header"))
			return
		}

		claims, err := utils.VerifyToken(secret, parts[1])
		if err != nil {
			httperr.Respond(c, httperr.Auth("Invalid or expired token"))
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth decodes a bearer token when one is present but lets anonymous
// requests through. Used where a route behaves differently for admins.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}
		if claims, err := utils.VerifyToken(secret, parts[1]); err == nil {
			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxIsAdmin, claims.IsAdmin)
		}
		c.Next()
	}
}
