package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// hookTokenHeader carries the shared secret git servers present on
// hook requests.
const hookTokenHeader = "X-Hook-Token"

// HookTokenMiddleware guards the commit hook endpoint with a shared
// secret. An empty configured token disables the check, which is only
// acceptable in development.
func HookTokenMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		presented := c.GetHeader(hookTokenHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "invalid hook token",
				},
			})
			return
		}
		c.Next()
	}
}
