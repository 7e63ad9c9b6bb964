// internal/repository/postgres/contact_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/domain/contact"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `id, name, company, email, phone, message, is_read, created_at`

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func scanContact(row pgx.Row) (*contact.Message, error) {
	var m contact.Message
	err := row.Scan(&m.ID, &m.Name, &m.Company, &m.Email, &m.Phone, &m.Message, &m.IsRead, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create stores a contact form submission
func (r *ContactRepository) Create(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contacts (name, company, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`
	err := r.db.QueryRow(ctx, query, m.Name, m.Company, m.Email, m.Phone, m.Message).
		Scan(&m.ID, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// List returns contact messages newest first
func (r *ContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	messages := []contact.Message{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return messages, nil
}

// FindByID retrieves a contact message by ID
func (r *ContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	m, err := scanContact(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return m, err
}

// SetRead updates the read flag
func (r *ContactRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) (*contact.Message, error) {
	query := `UPDATE contacts SET is_read = $1 WHERE id = $2 RETURNING ` + contactColumns

	m, err := scanContact(r.db.QueryRow(ctx, query, read, id))
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return m, err
}

// Delete removes a contact message
func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
