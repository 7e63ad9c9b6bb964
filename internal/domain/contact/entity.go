// internal/domain/contact/entity.go
package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Company   string    `json:"company" db:"company"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateRequest is the public contact form.
type CreateRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Company string `json:"company"`
	Email   string `json:"email" binding:"required,email_format,max=100"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required,max=2000"`
}

type UpdateRequest struct {
	IsRead *bool `json:"is_read"`
}

type Repository interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context) ([]Message, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) (*Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
