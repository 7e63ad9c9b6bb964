// internal/repository/postgres/admin_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/domain/admin"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adminColumns = `id, email, password, name, created_at`

type AdminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func scanAdmin(row pgx.Row) (*admin.Admin, error) {
	var a admin.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new admin
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
		INSERT INTO admins (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.Pool().QueryRow(ctx, query, a.Email, a.PasswordHash, a.Name).Scan(&a.ID, &a.CreatedAt)
	if hasCode(err, codeUniqueViolation) {
		return xerrors.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByEmail looks up an admin by normalized email
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	a, err := scanAdmin(r.db.Pool().QueryRow(ctx, query, email))
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return a, err
}

// FindByID retrieves an admin by ID
func (r *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	a, err := scanAdmin(r.db.Pool().QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return a, err
}

// EmailTakenByOther reports whether another admin already uses email
func (r *AdminRepository) EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1 AND id <> $2)`

	var exists bool
	if err := r.db.Pool().QueryRow(ctx, query, email, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin email: %w", err)
	}
	return exists, nil
}

// UpdateProfile sets name and email and returns the updated admin
func (r *AdminRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*admin.Admin, error) {
	query := `
		UPDATE admins SET name = $1, email = $2
		WHERE id = $3
		RETURNING ` + adminColumns

	a, err := scanAdmin(r.db.Pool().QueryRow(ctx, query, name, email, id))
	if hasCode(err, codeUniqueViolation) {
		return nil, xerrors.ErrConflict
	}
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return a, err
}

// UpdatePassword stores a new password hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.Pool().Exec(ctx, `UPDATE admins SET password = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpsertByEmail creates the admin or refreshes the name and password of the
// account holding the same email.
func (r *AdminRepository) UpsertByEmail(ctx context.Context, a *admin.Admin) (bool, error) {
	created := false
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		existing, err := scanAdmin(tx.QueryRow(ctx,
			`SELECT `+adminColumns+` FROM admins WHERE email = $1 FOR UPDATE`, a.Email))
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			created = true
			return tx.QueryRow(ctx,
				`INSERT INTO admins (email, password, name) VALUES ($1, $2, $3) RETURNING id, created_at`,
				a.Email, a.PasswordHash, a.Name,
			).Scan(&a.ID, &a.CreatedAt)
		case err != nil:
			return err
		}

		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
		_, err = tx.Exec(ctx, `UPDATE admins SET password = $1, name = $2 WHERE id = $3`,
			a.PasswordHash, a.Name, a.ID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert admin: %w", err)
	}
	return created, nil
}

// ReplaceAll deletes every admin and inserts admins atomically
func (r *AdminRepository) ReplaceAll(ctx context.Context, admins []*admin.Admin) error {
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM admins`); err != nil {
			return err
		}
		for _, a := range admins {
			err := tx.QueryRow(ctx,
				`INSERT INTO admins (email, password, name) VALUES ($1, $2, $3) RETURNING id, created_at`,
				a.Email, a.PasswordHash, a.Name,
			).Scan(&a.ID, &a.CreatedAt)
			if err != nil {
				return fmt.Errorf("insert %s: %w", a.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace admins: %w", err)
	}
	return nil
}
