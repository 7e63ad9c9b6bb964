// internal/domain/admin/repository.go
package admin

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*Admin, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// UpsertByEmail creates the account or replaces the name and password of
	// the existing one. It reports whether a row was created.
	UpsertByEmail(ctx context.Context, a *Admin) (bool, error)
	// ReplaceAll deletes every account and inserts admins in one transaction.
	ReplaceAll(ctx context.Context, admins []*Admin) error
}
