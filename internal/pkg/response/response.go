// internal/pkg/response/response.go
package response

import (
	"net/http"

	xerrors "catalog-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, data ...interface{}) {
	// Abort first so no later handler writes to the response.
	c.Abort()

	resp := Response{
		Success: false,
		Code:    code,
		Message: message,
	}
	if len(data) > 0 && data[0] != nil {
		resp.Data = data[0]
	}

	c.JSON(status, resp)
}

// FromError writes err as an error envelope. Typed errors keep their status,
// code and client message; anything else collapses to a generic 500 so driver
// messages never reach the client.
func FromError(c *gin.Context, err error) {
	appErr, ok := xerrors.AsError(err)
	if !ok {
		appErr = xerrors.Upstream("Error en el servidor", err)
	}
	_ = c.Error(err)

	if appErr.Details != nil {
		Error(c, appErr.Status, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	Error(c, appErr.Status, appErr.Code, appErr.Message)
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, code, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, code, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, xerrors.CodeNotFound, message)
}
