// Package password hashes and verifies admin passwords with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// RoutineCost is used for ordinary account writes.
	RoutineCost = 10
	// ResetCost is used when credentials are (re)issued by an operator.
	ResetCost = 12

	// MaxLength is bcrypt's input limit in bytes.
	MaxLength = 72
)

// DummyHash is a well-formed cost-10 hash compared against when no account
// matches, so unknown emails cost the same as wrong passwords.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = RoutineCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt hash of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. A malformed hash is a mismatch.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
