// internal/middleware/auth_middleware.go
package middleware

import (
	"context"
	"strings"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const adminIDKey = "admin_id"

// TokenValidator resolves a bearer token to the admin it was issued to.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type AuthMiddleware struct {
	validator TokenValidator
	logger    *zap.Logger
}

func NewAuthMiddleware(validator TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// Auth rejects requests without a valid bearer token and stores the admin id
// in the context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, xerrors.CodeUnauthorized, "No autorizado")
			return
		}

		if !wellFormed(token) {
			m.logger.Warn("malformed bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			response.Unauthorized(c, xerrors.CodeInvalidToken, "Token inválido")
			return
		}

		adminID, err := m.validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			m.logger.Warn("rejected bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
				zap.Error(err),
			)
			response.FromError(c, err)
			return
		}

		c.Set(adminIDKey, adminID)
		c.Next()
	}
}

// extractToken reads "Authorization: Bearer <token>". Tokens are never taken
// from the query string.
func extractToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return ""
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// wellFormed checks for three non-empty dot-separated segments.
func wellFormed(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
