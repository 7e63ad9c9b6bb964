package middleware

import (
	"net/http"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/response"
	"catalog-service/internal/pkg/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidateUUID rejects the request with 400 unless every named path
// parameter is a canonical UUID.
func ValidateUUID(params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range params {
			if !validate.UUID(c.Param(name)) {
				response.ValidationError(c, xerrors.CodeInvalidId, "ID inválido")
				return
			}
		}
		c.Next()
	}
}

// MaxBodySize caps request bodies at limit bytes.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			response.Error(c, http.StatusRequestEntityTooLarge, xerrors.CodeInvalidRequest, "La solicitud es demasiado grande")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// PathUUID parses a path parameter, answering 400 when it is not a UUID.
func PathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	if !validate.UUID(raw) {
		response.ValidationError(c, xerrors.CodeInvalidId, "ID inválido")
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}
