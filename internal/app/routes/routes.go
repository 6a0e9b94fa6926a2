package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/app/controllers"
	"github.com/papaahmadoufall/securaccess/internal/app/middleware"
	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// SetupRouter builds the gin engine with all API routes. Reads stay open in
// degraded mode; logins and writes sit behind the store guard.
func SetupRouter(c *container.ServiceContainer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middleware.IPRateLimiter(20, 50))

	middleware.InitAuthMiddleware(c.AuthService)
	storeGuard := middleware.RequireStore(func() bool { return c.Degraded })

	r.NoRoute(func(ctx *gin.Context) {
		response.Fail(ctx, code.ErrRouteNotFound)
	})

	api := r.Group("/api")

	api.GET("/test/health", controllers.HandleHealthFunc(c))

	registerAuthRoutes(api, c, storeGuard)
	registerWorkerRoutes(api, c, storeGuard)
	registerHostRoutes(api, c, storeGuard)
	registerStatsRoutes(api, c)

	return r
}

func registerAuthRoutes(api *gin.RouterGroup, c *container.ServiceContainer, storeGuard gin.HandlerFunc) {
	auth := api.Group("/auth")

	// logins share a tight per-IP-and-path budget against brute force
	loginLimiter := middleware.CombinedRateLimiter(1, 5)

	auth.POST("/login/worker", storeGuard, loginLimiter, controllers.HandleAuthFunc(c, "workerLogin"))
	auth.POST("/login/host", storeGuard, loginLimiter, controllers.HandleAuthFunc(c, "hostLogin"))
	auth.POST("/login/manager", storeGuard, loginLimiter, controllers.HandleAuthFunc(c, "managerLogin"))

	auth.GET("/validate-token", controllers.HandleAuthFunc(c, "validateToken"))
	auth.POST("/logout", controllers.HandleAuthFunc(c, "logout"))
}

func registerWorkerRoutes(api *gin.RouterGroup, c *container.ServiceContainer, storeGuard gin.HandlerFunc) {
	workers := api.Group("/workers")

	manager := middleware.AuthenticateManager()
	actor := middleware.AuthenticateActor()

	workers.GET("", manager, middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleWorkerFunc(c, "getWorkers"))
	workers.POST("", manager, storeGuard, controllers.HandleWorkerFunc(c, "createWorker"))
	workers.PUT("/:id", manager, storeGuard, controllers.HandleWorkerFunc(c, "updateWorker"))
	workers.DELETE("/:id", manager, storeGuard, controllers.HandleWorkerFunc(c, "deleteWorker"))
	workers.PUT("/:id/status", manager, storeGuard, controllers.HandleWorkerFunc(c, "setWorkerStatus"))

	workers.GET("/:id/profile", actor, controllers.HandleWorkerFunc(c, "getWorkerProfile"))
	workers.GET("/:id/qr-code/generate", actor, storeGuard, controllers.HandleWorkerFunc(c, "generateWorkerQRCode"))
	workers.GET("/:id/access-history", actor, controllers.HandleWorkerFunc(c, "getWorkerAccessHistory"))
	workers.POST("/:id/access-log", actor, storeGuard, controllers.HandleWorkerFunc(c, "recordWorkerAccess"))
}

func registerHostRoutes(api *gin.RouterGroup, c *container.ServiceContainer, storeGuard gin.HandlerFunc) {
	hosts := api.Group("/hosts")

	manager := middleware.AuthenticateManager()
	actor := middleware.AuthenticateActor()

	hosts.GET("", manager, middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleHostFunc(c, "getHosts"))
	hosts.POST("", manager, storeGuard, controllers.HandleHostFunc(c, "createHost"))
	hosts.PUT("/:id", manager, storeGuard, controllers.HandleHostFunc(c, "updateHost"))
	hosts.DELETE("/:id", manager, storeGuard, controllers.HandleHostFunc(c, "deleteHost"))
	hosts.PUT("/:id/status", manager, storeGuard, controllers.HandleHostFunc(c, "setHostStatus"))

	hosts.GET("/:id/profile", actor, controllers.HandleHostFunc(c, "getHostProfile"))
	hosts.GET("/:id/qr-code/generate", actor, storeGuard, controllers.HandleHostFunc(c, "generateHostQRCode"))
	hosts.GET("/:id/access-history", actor, controllers.HandleHostFunc(c, "getHostAccessHistory"))
}

func registerStatsRoutes(api *gin.RouterGroup, c *container.ServiceContainer) {
	stats := api.Group("/stats")
	stats.GET("/dashboard", middleware.AuthenticateManager(), middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleStatsFunc(c, "dashboard"))
}

func corsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
