package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// InterfaceWorkerController defines the worker controller interface
type InterfaceWorkerController interface {
	GetWorkers()
	CreateWorker()
	UpdateWorker()
	DeleteWorker()
	SetWorkerStatus()
	GetWorkerProfile()
	GenerateWorkerQRCode()
	GetWorkerAccessHistory()
	RecordWorkerAccess()
}

// WorkerController handles worker roster and worker-facing requests
type WorkerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewWorkerController creates a new worker controller
func NewWorkerController(ctx *gin.Context, container *container.ServiceContainer) *WorkerController {
	return &WorkerController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleWorkerFunc returns a gin handler for the given method
func HandleWorkerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewWorkerController(ctx, container)
		switch method {
		case "getWorkers":
			controller.GetWorkers()
		case "createWorker":
			controller.CreateWorker()
		case "updateWorker":
			controller.UpdateWorker()
		case "deleteWorker":
			controller.DeleteWorker()
		case "setWorkerStatus":
			controller.SetWorkerStatus()
		case "getWorkerProfile":
			controller.GetWorkerProfile()
		case "generateWorkerQRCode":
			controller.GenerateWorkerQRCode()
		case "getWorkerAccessHistory":
			controller.GetWorkerAccessHistory()
		case "recordWorkerAccess":
			controller.RecordWorkerAccess()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

type createWorkerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Pin        string `json:"pin"`
	Department string `json:"department"`
}

type updateWorkerRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Pin        *string `json:"pin"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"isActive"`
}

type statusRequest struct {
	IsActive *bool `json:"isActive"`
}

type recordAccessRequest struct {
	Type     string `json:"type"`
	Location string `json:"location"`
	QRCode   string `json:"qrCode"`
}

// GetWorkers returns the full roster, newest first
func (c *WorkerController) GetWorkers() {
	workerService := c.Container.GetService("worker").(services.InterfaceWorkerService)
	workers, err := workerService.GetAllWorkers()
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"workers": workers,
		"total":   len(workers),
	})
}

// CreateWorker registers a new worker
func (c *WorkerController) CreateWorker() {
	var req createWorkerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	workerService := c.Container.GetService("worker").(services.InterfaceWorkerService)
	worker, err := workerService.CreateWorker(req.Name, req.Phone, req.Pin, req.Department)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"worker":  worker,
		"message": "Employé créé avec succès",
	})
}

// UpdateWorker applies a partial update to a worker
func (c *WorkerController) UpdateWorker() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req updateWorkerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	workerService := c.Container.GetService("worker").(services.InterfaceWorkerService)
	worker, err := workerService.UpdateWorker(id, services.WorkerUpdate{
		Name:       req.Name,
		Phone:      req.Phone,
		Pin:        req.Pin,
		Department: req.Department,
		IsActive:   req.IsActive,
	})
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"worker":  worker,
		"message": "Employé mis à jour avec succès",
	})
}

// DeleteWorker removes a worker and their access history
func (c *WorkerController) DeleteWorker() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	workerService := c.Container.GetService("worker").(services.InterfaceWorkerService)
	if err := workerService.DeleteWorker(id); err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"message": "Employé supprimé avec succès",
	})
}

// SetWorkerStatus activates or deactivates a worker
func (c *WorkerController) SetWorkerStatus() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	workerService := c.Container.GetService("worker").(services.InterfaceWorkerService)
	worker, err := workerService.SetWorkerStatus(id, *req.IsActive)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	message := "Employé activé"
	if !worker.IsActive {
		message = "Employé désactivé"
	}
	response.Success(c.Ctx, gin.H{
		"worker":  worker,
		"message": message,
	})
}

// GetWorkerProfile returns one worker's public profile
func (c *WorkerController) GetWorkerProfile() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	workerService := c.Container.GetService("worker").(services.InterfaceWorkerService)
	worker, err := workerService.GetWorkerByID(id)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"worker": worker.PublicProfile(),
	})
}

// GenerateWorkerQRCode issues a fresh 8 hour access code
func (c *WorkerController) GenerateWorkerQRCode() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	qrService := c.Container.GetService("qrcode").(services.InterfaceQRCodeService)
	qrCode, err := qrService.GenerateForWorker(id)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"qrCode": qrCode,
	})
}

// GetWorkerAccessHistory returns the newest access events for a worker.
// ?limit= clamps to the page bounds, ?type= filters on entry or exit.
func (c *WorkerController) GetWorkerAccessHistory() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "0"))
	accessType := c.Ctx.Query("type")

	logService := c.Container.GetService("accessLog").(services.InterfaceAccessLogService)
	history, err := logService.WorkerHistory(id, accessType, limit)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"history": history,
		"total":   len(history),
	})
}

// RecordWorkerAccess appends an entry or exit event for a worker
func (c *WorkerController) RecordWorkerAccess() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req recordAccessRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	logService := c.Container.GetService("accessLog").(services.InterfaceAccessLogService)
	entry, err := logService.RecordWorkerAccess(id, req.Type, req.Location, req.QRCode)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrWorkerNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"accessLog": entry,
		"message":   "Accès enregistré",
	})
}
