package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// APIVersion is reported by the health endpoint
const APIVersion = "1.0.0"

// HandleHealthFunc returns the health probe handler. The probe always
// answers 200; the database field tells degraded mode apart.
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		database := "Disconnected"
		if !container.Degraded && container.Pool != nil && container.Pool.HealthCheck() == nil {
			database = "Connected"
		}

		response.Success(ctx, gin.H{
			"message":   "SecurAccess Enterprise API is running",
			"database":  database,
			"timestamp": time.Now().UnixMilli(),
			"version":   APIVersion,
		})
	}
}
