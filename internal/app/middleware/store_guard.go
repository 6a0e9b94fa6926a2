package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// RequireStore refuses requests with 503 while the process runs in degraded
// mode. It guards every login and write route: reads stay available from the
// in-memory fixtures, but nothing that needs durable or real data may run
// against them.
func RequireStore(degraded func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if degraded() {
			response.Fail(c, code.ErrStoreUnavailable)
			c.Abort()
			return
		}
		c.Next()
	}
}
