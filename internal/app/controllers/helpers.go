package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/domain/services"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/internal/error/code"
	"github.com/papaahmadoufall/securaccess/internal/error/response"
	"github.com/papaahmadoufall/securaccess/pkg/logger"
)

// parseIDParam reads a positive numeric path parameter. On failure it writes
// the 400 response itself and returns false.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Fail(ctx, code.ErrValidation)
		return 0, false
	}
	return uint(id), true
}

// failFromServiceError maps a service error onto the wire failure shape.
// notFoundCode selects the actor-specific 404 for stores.ErrNotFound.
func failFromServiceError(ctx *gin.Context, err error, notFoundCode int) {
	switch {
	case errors.Is(err, services.ErrInvalidPhone):
		response.Fail(ctx, code.ErrInvalidPhone)
	case errors.Is(err, services.ErrInvalidPIN):
		response.Fail(ctx, code.ErrInvalidPIN)
	case errors.Is(err, services.ErrInvalidEmail):
		response.Fail(ctx, code.ErrInvalidEmail)
	case errors.Is(err, services.ErrInvalidPassword):
		response.Fail(ctx, code.ErrInvalidPassword)
	case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrMissingField):
		response.Fail(ctx, code.ErrValidation)
	case errors.Is(err, services.ErrBadCredentials):
		response.Fail(ctx, code.ErrBadCredentials)
	case errors.Is(err, services.ErrTokenInvalid):
		response.Fail(ctx, code.ErrTokenInvalid)
	case errors.Is(err, services.ErrPhoneInUse):
		response.Fail(ctx, code.ErrPhoneAlreadyUsed)
	case errors.Is(err, stores.ErrNotFound):
		response.Fail(ctx, notFoundCode)
	case errors.Is(err, stores.ErrUnavailable):
		response.Fail(ctx, code.ErrStoreUnavailable)
	default:
		logger.Error("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		response.Fail(ctx, code.ErrDatabase)
	}
}
