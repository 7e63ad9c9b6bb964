// internal/service/auth/admin_create.go
package auth

import (
	"context"
	"fmt"
	"strings"

	"catalog-service/internal/domain/admin"
	"catalog-service/internal/pkg/password"
	"catalog-service/internal/pkg/validate"

	"go.uber.org/zap"
)

func checkSeed(seed admin.Seed) error {
	if !validate.Email(seed.Email) {
		return fmt.Errorf("invalid admin email %q", seed.Email)
	}
	if strings.TrimSpace(seed.Name) == "" {
		return fmt.Errorf("admin %s needs a name", seed.Email)
	}
	if len(seed.Password) < validate.MinPasswordLength {
		return fmt.Errorf("admin %s password must be at least %d characters", seed.Email, validate.MinPasswordLength)
	}
	if len(seed.Password) > password.MaxLength {
		return fmt.Errorf("admin %s password exceeds %d bytes", seed.Email, password.MaxLength)
	}
	return nil
}

// EnsureAdmin creates the seeded admin or refreshes its name and password.
// It reports whether the account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, seed admin.Seed) (bool, error) {
	if err := checkSeed(seed); err != nil {
		return false, err
	}

	hash, err := s.hasher.Hash(seed.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &admin.Admin{
		Email:        validate.NormalizeEmail(seed.Email),
		PasswordHash: hash,
		Name:         strings.TrimSpace(seed.Name),
	}
	created, err := s.repo.UpsertByEmail(ctx, a)
	if err != nil {
		return false, err
	}

	s.logger.Info("admin account ensured",
		zap.String("email", a.Email),
		zap.Bool("created", created),
	)
	return created, nil
}

// ResetAdmins deletes every admin account and provisions seeds with the
// reset hashing cost.
func (s *AuthService) ResetAdmins(ctx context.Context, seeds []admin.Seed) ([]admin.AdminInfo, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("at least one admin is required")
	}

	seen := make(map[string]bool, len(seeds))
	accounts := make([]*admin.Admin, 0, len(seeds))
	for _, seed := range seeds {
		if err := checkSeed(seed); err != nil {
			return nil, err
		}
		email := validate.NormalizeEmail(seed.Email)
		if seen[email] {
			return nil, fmt.Errorf("duplicate admin email %s", email)
		}
		seen[email] = true

		hash, err := s.resetHasher.Hash(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		accounts = append(accounts, &admin.Admin{
			Email:        email,
			PasswordHash: hash,
			Name:         strings.TrimSpace(seed.Name),
		})
	}

	if err := s.repo.ReplaceAll(ctx, accounts); err != nil {
		return nil, err
	}

	infos := make([]admin.AdminInfo, 0, len(accounts))
	for _, a := range accounts {
		infos = append(infos, a.Info())
	}
	s.logger.Warn("admin accounts reset", zap.Int("count", len(infos)))
	return infos, nil
}
