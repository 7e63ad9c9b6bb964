// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries only the admin identifier (as subject) plus the registered
// timing claims. No email or profile data goes into the token.
type Claims struct {
	jwt.RegisteredClaims
}

// AdminID returns the subject.
func (c *Claims) AdminID() string {
	return c.Subject
}
