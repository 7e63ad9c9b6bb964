// internal/pkg/jwt/loader.go
package jwt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Secret string
	TTL    time.Duration
}

type Manager struct {
	Generator *Generator
	Verifier  *Verifier
}

// LoadAndBuild validates cfg and builds a generator/verifier pair sharing one
// secret. The verifier's maximum token age equals the TTL.
func LoadAndBuild(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", cfg.TTL)
	}

	secret := []byte(cfg.Secret)
	return &Manager{
		Generator: NewGenerator(secret, cfg.TTL),
		Verifier:  NewVerifier(secret, cfg.TTL),
	}, nil
}

// ParseExpiry accepts "7d", "12h", "30m", "45s", any time.ParseDuration
// string, or a bare number of seconds.
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty expiry")
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("expiry must be positive: %q", s)
		}
		return time.Duration(secs) * time.Second, nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("invalid expiry %q", s)
		}
		return time.Duration(days * float64(24*time.Hour)), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid expiry %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive: %q", s)
	}
	return d, nil
}
