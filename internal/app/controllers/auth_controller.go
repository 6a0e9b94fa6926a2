package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/app/middleware"
	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
)

// InterfaceAuthController defines the authentication controller interface
type InterfaceAuthController interface {
	WorkerLogin()
	HostLogin()
	ManagerLogin()
	ValidateToken()
	Logout()
}

// AuthController handles login, token validation and logout
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new authentication controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc returns a gin handler for the given method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)
		switch method {
		case "workerLogin":
			controller.WorkerLogin()
		case "hostLogin":
			controller.HostLogin()
		case "managerLogin":
			controller.ManagerLogin()
		case "validateToken":
			controller.ValidateToken()
		case "logout":
			controller.Logout()
		default:
			response.Fail(ctx, code.ErrRouteNotFound)
		}
	}
}

type pinLoginRequest struct {
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}

type managerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// WorkerLogin authenticates a worker with phone + PIN
func (c *AuthController) WorkerLogin() {
	var req pinLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	auth := c.Container.GetService("auth").(services.InterfaceAuthService)
	result, err := auth.LoginWorker(req.Phone, req.Pin)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrBadCredentials)
		return
	}

	response.Success(c.Ctx, gin.H{
		"user":      result.User,
		"token":     result.Token,
		"role":      result.Role,
		"expiresIn": result.ExpiresIn,
	})
}

// HostLogin authenticates a host with phone + PIN
func (c *AuthController) HostLogin() {
	var req pinLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	auth := c.Container.GetService("auth").(services.InterfaceAuthService)
	result, err := auth.LoginHost(req.Phone, req.Pin)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrBadCredentials)
		return
	}

	response.Success(c.Ctx, gin.H{
		"user":      result.User,
		"token":     result.Token,
		"role":      result.Role,
		"expiresIn": result.ExpiresIn,
	})
}

// ManagerLogin authenticates a manager with email + password
func (c *AuthController) ManagerLogin() {
	var req managerLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	auth := c.Container.GetService("auth").(services.InterfaceAuthService)
	result, err := auth.LoginManager(req.Email, req.Password)
	if err != nil {
		failFromServiceError(c.Ctx, err, code.ErrBadCredentials)
		return
	}

	response.Success(c.Ctx, gin.H{
		"user":      result.User,
		"token":     result.Token,
		"role":      result.Role,
		"expiresIn": result.ExpiresIn,
	})
}

// ValidateToken verifies the bearer token and returns the current profile
func (c *AuthController) ValidateToken() {
	authHeader := c.Ctx.GetHeader("Authorization")
	if authHeader == "" {
		response.Fail(c.Ctx, code.ErrTokenInvalid)
		return
	}

	auth := c.Container.GetService("auth").(services.InterfaceAuthService)
	claims, err := auth.ValidateToken(middleware.ExtractToken(authHeader))
	if err != nil {
		response.Fail(c.Ctx, code.ErrTokenInvalid)
		return
	}

	var user map[string]interface{}
	switch claims.Role {
	case models.RoleWorker:
		worker, err := c.Container.Stores.Workers.GetByID(claims.UserID)
		if err != nil {
			response.Fail(c.Ctx, code.ErrTokenInvalid)
			return
		}
		user = worker.PublicProfile()
	case models.RoleHost:
		host, err := c.Container.Stores.Hosts.GetByID(claims.UserID)
		if err != nil {
			response.Fail(c.Ctx, code.ErrTokenInvalid)
			return
		}
		user = host.PublicProfile()
	case models.RoleManager:
		manager, err := c.Container.Stores.Managers.GetByID(claims.UserID)
		if err != nil {
			response.Fail(c.Ctx, code.ErrTokenInvalid)
			return
		}
		user = manager.PublicProfile()
	default:
		response.Fail(c.Ctx, code.ErrTokenInvalid)
		return
	}

	response.Success(c.Ctx, gin.H{
		"valid": true,
		"user":  user,
		"role":  claims.Role,
	})
}

// Logout revokes the bearer token for its remaining lifetime
func (c *AuthController) Logout() {
	authHeader := c.Ctx.GetHeader("Authorization")
	if authHeader == "" {
		response.Fail(c.Ctx, code.ErrTokenInvalid)
		return
	}

	auth := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := auth.Logout(middleware.ExtractToken(authHeader)); err != nil {
		failFromServiceError(c.Ctx, err, code.ErrTokenInvalid)
		return
	}

	response.Success(c.Ctx, gin.H{
		"message": "Déconnexion réussie",
	})
}
