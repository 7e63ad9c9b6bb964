// internal/middleware/helpers.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAdminID returns the authenticated admin's id
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(adminIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// MustGetAdminID gets the admin id from context or panics. Only call it
// behind Auth().
func MustGetAdminID(c *gin.Context) uuid.UUID {
	id, ok := GetAdminID(c)
	if !ok {
		panic("admin_id not found in context")
	}
	return id
}

// IsAuthenticated checks if request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, ok := GetAdminID(c)
	return ok
}

// GetRequestID returns the id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
