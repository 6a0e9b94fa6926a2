package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// InterfaceHostController defines the host controller interface
type InterfaceHostController interface {
	GetHosts()
	CreateHost()
	UpdateHost()
	DeleteHost()
	SetHostStatus()
	GetHostProfile()
	GenerateHostQRCode()
	GetHostAccessHistory()
}

// HostController handles host roster and host-facing requests
type HostController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHostController creates a new host controller
func NewHostController(ctx *gin.Context, container *container.ServiceContainer) *HostController {
	return &HostController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHostFunc returns a gin handler for the given method
func HandleHostFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHostController(ctx, container)
		switch method {
		case "getHosts":
			controller.GetHosts()
		case "createHost":
			controller.CreateHost()
		case "updateHost":
			controller.UpdateHost()
		case "deleteHost":
			controller.DeleteHost()
		case "setHostStatus":
			controller.SetHostStatus()
		case "getHostProfile":
			controller.GetHostProfile()
		case "generateHostQRCode":
			controller.GenerateHostQRCode()
		case "getHostAccessHistory":
			controller.GetHostAccessHistory()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

type createHostRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Pin             string `json:"pin"`
	Location        string `json:"location"`
	AccessStartDate string `json:"accessStartDate"`
	AccessEndDate   string `json:"accessEndDate"`
}

type updateHostRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Pin             *string `json:"pin"`
	Location        *string `json:"location"`
	AccessStartDate *string `json:"accessStartDate"`
	AccessEndDate   *string `json:"accessEndDate"`
	IsActive        *bool   `json:"isActive"`
}

// GetHosts returns the full host roster, newest first
func (c *HostController) GetHosts() {
	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	hosts, err := hostService.GetAllHosts()
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"hosts": hosts,
		"total": len(hosts),
	})
}

// CreateHost registers a new host with an access window
func (c *HostController) CreateHost() {
	var req createHostRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	host, err := hostService.CreateHost(req.Name, req.Phone, req.Pin, req.Location, req.AccessStartDate, req.AccessEndDate)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"host":    host,
		"message": "Hôte créé avec succès",
	})
}

// UpdateHost applies a partial update to a host
func (c *HostController) UpdateHost() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req updateHostRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	host, err := hostService.UpdateHost(id, services.HostUpdate{
		Name:            req.Name,
		Phone:           req.Phone,
		Pin:             req.Pin,
		Location:        req.Location,
		AccessStartDate: req.AccessStartDate,
		AccessEndDate:   req.AccessEndDate,
		IsActive:        req.IsActive,
	})
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"host":    host,
		"message": "Hôte mis à jour avec succès",
	})
}

// DeleteHost removes a host and their access history
func (c *HostController) DeleteHost() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	if err := hostService.DeleteHost(id); err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"message": "Hôte supprimé avec succès",
	})
}

// SetHostStatus activates or deactivates a host
func (c *HostController) SetHostStatus() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	host, err := hostService.SetHostStatus(id, *req.IsActive)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	message := "Hôte activé"
	if !host.IsActive {
		message = "Hôte désactivé"
	}
	response.Success(c.Ctx, gin.H{
		"host":    host,
		"message": message,
	})
}

// GetHostProfile returns one host's public profile
func (c *HostController) GetHostProfile() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	hostService := c.Container.GetService("host").(services.InterfaceHostService)
	host, err := hostService.GetHostByID(id)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"host": host.PublicProfile(),
	})
}

// GenerateHostQRCode issues a fresh 4 hour access code
func (c *HostController) GenerateHostQRCode() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	qrService := c.Container.GetService("qrcode").(services.InterfaceQRCodeService)
	qrCode, err := qrService.GenerateForHost(id)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"qrCode": qrCode,
	})
}

// GetHostAccessHistory returns the newest access events for a host
func (c *HostController) GetHostAccessHistory() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "0"))
	accessType := c.Ctx.Query("type")

	logService := c.Container.GetService("accessLog").(services.InterfaceAccessLogService)
	history, err := logService.HostHistory(id, accessType, limit)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrHostNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"history": history,
		"total":   len(history),
	})
}
