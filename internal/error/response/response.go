package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/papaahmadoufall/securaccess/internal/error/code"
)

// The API uses two response shapes everywhere:
//
//	{"success": true,  <payload fields>}
//	{"success": false, "error": <message>, "timestamp": <epoch-ms>}
//
// Every handler maps its faults onto an error code before responding; nothing
// propagates past the controller boundary unformatted.

// Success writes a 200 with the payload fields merged beside success:true
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(code.StatusOK, body)
}

// Fail writes the failure shape using the code's registered message
func Fail(c *gin.Context, errorCode int) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode))
}

// FailWithMessage writes the failure shape with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), gin.H{
		"success":   false,
		"error":     message,
		"timestamp": time.Now().UnixMilli(),
	})
}
