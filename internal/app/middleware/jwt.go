package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

var authService services.InterfaceAuthService

// InitAuthMiddleware injects the auth service used to verify bearer tokens
func InitAuthMiddleware(s services.InterfaceAuthService) {
	authService = s
}

// ExtractToken strips an optional "Bearer " prefix from the header value
func ExtractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

func verifyRequest(c *gin.Context) *services.AuthClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Fail(c, code.ErrTokenInvalid)
		c.Abort()
		return nil
	}

	claims, err := authService.ValidateToken(ExtractToken(authHeader))
	if err != nil {
		response.Fail(c, code.ErrTokenInvalid)
		c.Abort()
		return nil
	}

	c.Set("userID", claims.UserID)
	c.Set("role", claims.Role)
	c.Set("claims", claims)
	return claims
}

// Authentication accepts any valid token regardless of role
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifyRequest(c) == nil {
			return
		}
		c.Next()
	}
}

// AuthenticateManager accepts manager tokens only. The rejection is the same
// 401 as an invalid token; role names are not echoed back.
func AuthenticateManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := verifyRequest(c)
		if claims == nil {
			return
		}
		if claims.Role != models.RoleManager {
			response.Fail(c, code.ErrTokenInvalid)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticateActor accepts worker and host tokens, plus managers acting on
// their behalf
func AuthenticateActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := verifyRequest(c)
		if claims == nil {
			return
		}
		switch claims.Role {
		case models.RoleWorker, models.RoleHost, models.RoleManager:
			c.Next()
		default:
			response.Fail(c, code.ErrTokenInvalid)
			c.Abort()
		}
	}
}
