package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/httperr"
)

// Recovery turns panics into the standard JSON 500 body instead of an empty
// response, logging the trace server-side.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				httperr.Respond(c, httperr.Internal(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
