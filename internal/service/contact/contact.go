// internal/service/contact/contact.go
package contact

import (
	"context"
	"errors"
	"strings"

	"catalog-service/internal/domain/contact"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService struct {
	repo   contact.Repository
	logger *zap.Logger
}

func NewContactService(repo contact.Repository, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// ========== Public ==========

// Submit validates and sanitizes a contact form and stores it. Nothing is
// stored when validation fails.
func (s *ContactService) Submit(ctx context.Context, req *contact.CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes")
	}
	if !validate.Email(req.Email) {
		return xerrors.Validation(xerrors.CodeInvalidEmailFormat, "Formato de email inválido")
	}
	if validate.TooLong(req.Name, validate.MaxContactName) ||
		validate.TooLong(req.Email, validate.MaxContactEmail) ||
		validate.TooLong(req.Message, validate.MaxContactMessage) {
		return xerrors.Validation(xerrors.CodeFieldTooLong, "Uno o más campos exceden el límite permitido")
	}

	m := &contact.Message{
		Name:    validate.Sanitize(req.Name, validate.MaxContactName),
		Company: validate.Sanitize(req.Company, validate.MaxSanitized),
		Email:   validate.NormalizeEmail(req.Email),
		Phone:   validate.Phone(req.Phone),
		Message: validate.Sanitize(req.Message, validate.MaxContactMessage),
	}
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios inválidos después de validación")
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("failed to save contact message", zap.Error(err))
		return xerrors.Upstream("Error al enviar el mensaje", err)
	}

	s.logger.Info("contact message received", zap.String("contact_id", m.ID.String()))
	return nil
}

// ========== Admin Operations ==========

// List returns messages newest first
func (s *ContactService) List(ctx context.Context) ([]contact.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list contact messages", zap.Error(err))
		return nil, xerrors.Upstream("Error al obtener mensajes", err)
	}
	if messages == nil {
		messages = []contact.Message{}
	}
	return messages, nil
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return m, nil
}

// MarkRead flags a message as read
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return s.setRead(ctx, id, true)
}

// Update sets the read flag from req
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req *contact.UpdateRequest) (*contact.Message, error) {
	if req.IsRead == nil {
		return nil, xerrors.Validation(xerrors.CodeEmptyUpdate, "No hay campos para actualizar")
	}
	return s.setRead(ctx, id, *req.IsRead)
}

func (s *ContactService) setRead(ctx context.Context, id uuid.UUID, read bool) (*contact.Message, error) {
	m, err := s.repo.SetRead(ctx, id, read)
	if err != nil {
		return nil, s.lookupError(err)
	}
	s.logger.Info("contact message updated", zap.String("contact_id", id.String()), zap.Bool("is_read", read))
	return m, nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.lookupError(err)
	}
	s.logger.Info("contact message deleted", zap.String("contact_id", id.String()))
	return nil
}

func (s *ContactService) lookupError(err error) error {
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.NotFound("Mensaje no encontrado")
	}
	s.logger.Error("contact store error", zap.Error(err))
	return xerrors.Upstream("Error en el servidor", err)
}
