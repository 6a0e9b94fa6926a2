package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// StatsController serves the manager dashboard
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController creates a new stats controller
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc returns a gin handler for the given method
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)
		switch method {
		case "dashboard":
			controller.Dashboard()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

// Dashboard returns roster counts, today's traffic and current occupancy
func (c *StatsController) Dashboard() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.Dashboard()
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrRouteNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"stats": stats,
	})
}
