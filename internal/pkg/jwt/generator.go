// internal/pkg/jwt/generator.go
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// SigningMethod is the only algorithm tokens are issued or accepted with.
var SigningMethod = jwt.SigningMethodHS256

type Generator struct {
	secret []byte
	Ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret []byte, ttl time.Duration) *Generator {
	return &Generator{
		secret: secret,
		Ttl:    ttl,
		now:    time.Now,
	}
}

// Generate mints a token for adminID and returns it with its expiry.
func (g *Generator) Generate(adminID string) (string, time.Time, error) {
	if len(g.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("jwt generator has empty secret")
	}
	if adminID == "" {
		return "", time.Time{}, fmt.Errorf("jwt generator requires a subject")
	}

	now := g.now()
	expiresAt := now.Add(g.Ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        ulid.Make().String(),
		},
	}

	signed, err := jwt.NewWithClaims(SigningMethod, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
