// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog-service/internal/domain/admin"
	"catalog-service/internal/pkg/attempts"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/jwt"
	"catalog-service/internal/pkg/metrics"
	"catalog-service/internal/pkg/password"
	"catalog-service/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MinLoginDuration is the floor every login response is padded to.
const MinLoginDuration = 200 * time.Millisecond

type AuthService struct {
	repo        admin.Repository
	tokens      *jwt.Manager
	tracker     attempts.Tracker
	hasher      *password.Hasher
	resetHasher *password.Hasher
	metrics     *metrics.Metrics
	logger      *zap.Logger

	minLoginDuration time.Duration
	now              func() time.Time
	sleep            func(ctx context.Context, d time.Duration)
}

func NewAuthService(
	repo admin.Repository,
	tokens *jwt.Manager,
	tracker attempts.Tracker,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		repo:             repo,
		tokens:           tokens,
		tracker:          tracker,
		hasher:           password.NewHasher(password.RoutineCost),
		resetHasher:      password.NewHasher(password.ResetCost),
		metrics:          m,
		logger:           logger,
		minLoginDuration: MinLoginDuration,
		now:              time.Now,
		sleep:            sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// ========== Login ==========

// Login authenticates an admin by email and password. Unknown emails and
// wrong passwords take the same time and return the same error.
func (s *AuthService) Login(ctx context.Context, req *admin.LoginRequest) (*admin.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, xerrors.Validation(xerrors.CodeMissingCredentials, "Email y contraseña son requeridos")
	}
	if !validate.Email(req.Email) {
		return nil, xerrors.Validation(xerrors.CodeInvalidEmailFormat, "Formato de email inválido")
	}

	email := validate.NormalizeEmail(req.Email)

	status, err := s.tracker.Check(ctx, email)
	if err != nil {
		s.metrics.Login(metrics.LoginUpstream)
		return nil, xerrors.Upstream("Error en el servidor", fmt.Errorf("login tracker: %w", err))
	}
	if status.Locked {
		minutes := status.RemainingMinutes()
		s.metrics.Login(metrics.LoginLocked)
		s.logger.Warn("login blocked, too many attempts",
			zap.String("email", email),
			zap.Int("remaining_minutes", minutes),
		)
		return nil, xerrors.Auth(http.StatusTooManyRequests, xerrors.CodeAccountLocked,
			fmt.Sprintf("Cuenta bloqueada temporalmente. Intenta de nuevo en %d minutos.", minutes),
		).WithDetails(map[string]interface{}{"remaining_minutes": minutes})
	}

	start := s.now()
	account, lookupErr := s.repo.FindByEmail(ctx, email)

	hash := password.DummyHash
	if lookupErr == nil && account != nil {
		hash = account.PasswordHash
	}
	valid := s.hasher.Verify(req.Password, hash)

	s.padSince(ctx, start)

	if lookupErr != nil && !errors.Is(lookupErr, xerrors.ErrNotFound) {
		s.metrics.Login(metrics.LoginUpstream)
		return nil, xerrors.Upstream("Error en el servidor", lookupErr)
	}

	if lookupErr != nil || account == nil || !valid {
		st, err := s.tracker.RecordFailure(ctx, email)
		if err != nil {
			s.logger.Error("failed to record login failure", zap.String("email", email), zap.Error(err))
		}
		s.metrics.Login(metrics.LoginFailure)
		s.logger.Warn("failed login attempt",
			zap.String("email", email),
			zap.Int("failures", st.Failures),
		)
		return nil, xerrors.Auth(http.StatusUnauthorized, xerrors.CodeInvalidCredentials, "Credenciales inválidas")
	}

	if err := s.tracker.Reset(ctx, email); err != nil {
		s.logger.Error("failed to reset login attempts", zap.String("email", email), zap.Error(err))
	}

	token, expiresAt, err := s.tokens.Generator.Generate(account.ID.String())
	if err != nil {
		s.metrics.Login(metrics.LoginUpstream)
		return nil, xerrors.Upstream("Error en el servidor", err)
	}

	s.metrics.Login(metrics.LoginSuccess)
	s.logger.Info("admin logged in", zap.String("admin_id", account.ID.String()))

	return &admin.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     account.Info(),
	}, nil
}

func (s *AuthService) padSince(ctx context.Context, start time.Time) {
	if elapsed := s.now().Sub(start); elapsed < s.minLoginDuration {
		s.sleep(ctx, s.minLoginDuration-elapsed)
	}
}

// ========== Tokens ==========

// ValidateToken verifies a bearer token and returns the admin id it carries.
func (s *AuthService) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := s.tokens.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return uuid.Nil, xerrors.Auth(http.StatusUnauthorized, xerrors.CodeSessionExpired, "Sesión expirada")
		}
		return uuid.Nil, &xerrors.Error{
			Kind:    xerrors.KindAuth,
			Code:    xerrors.CodeInvalidToken,
			Status:  http.StatusUnauthorized,
			Message: "Token inválido",
			Err:     err,
		}
	}

	id, err := uuid.Parse(claims.AdminID())
	if err != nil {
		return uuid.Nil, xerrors.Auth(http.StatusUnauthorized, xerrors.CodeInvalidToken, "Token inválido")
	}
	return id, nil
}

// ========== Profile ==========

// GetProfile returns the admin's public profile
func (s *AuthService) GetProfile(ctx context.Context, adminID uuid.UUID) (*admin.AdminInfo, error) {
	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return nil, s.adminLookupError(err)
	}
	info := a.Info()
	return &info, nil
}

// UpdateProfile replaces the admin's name and email
func (s *AuthService) UpdateProfile(ctx context.Context, adminID uuid.UUID, req *admin.UpdateProfileRequest) (*admin.AdminInfo, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, xerrors.Validation(xerrors.CodeMissingFields, "Nombre y email son requeridos")
	}
	if !validate.Email(req.Email) {
		return nil, xerrors.Validation(xerrors.CodeInvalidEmailFormat, "Formato de email inválido")
	}

	email := validate.NormalizeEmail(req.Email)
	taken, err := s.repo.EmailTakenByOther(ctx, email, adminID)
	if err != nil {
		return nil, xerrors.Upstream("Error al actualizar perfil", err)
	}
	if taken {
		return nil, xerrors.Validation(xerrors.CodeEmailInUse, "Este email ya está en uso")
	}

	a, err := s.repo.UpdateProfile(ctx, adminID, validate.Sanitize(req.Name, 0), email)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			return nil, xerrors.Validation(xerrors.CodeEmailInUse, "Este email ya está en uso")
		}
		return nil, s.adminLookupError(err)
	}

	s.logger.Info("admin profile updated", zap.String("admin_id", adminID.String()))
	info := a.Info()
	return &info, nil
}

// ChangePassword replaces the admin's password after checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, req *admin.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return xerrors.Validation(xerrors.CodeMissingFields, "Todos los campos son requeridos")
	}
	if req.NewPassword != req.ConfirmPassword {
		return xerrors.Validation(xerrors.CodePasswordMismatch, "Las contraseñas no coinciden")
	}
	if len(req.NewPassword) < validate.MinPasswordLength {
		return xerrors.Validation(xerrors.CodeWeakPassword, "La contraseña debe tener al menos 8 caracteres")
	}
	if len(req.NewPassword) > password.MaxLength {
		return xerrors.Validation(xerrors.CodeFieldTooLong, "La contraseña no puede superar 72 caracteres")
	}

	a, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return s.adminLookupError(err)
	}

	if !s.hasher.Verify(req.CurrentPassword, a.PasswordHash) {
		s.logger.Warn("invalid current password", zap.String("admin_id", adminID.String()))
		return xerrors.Auth(http.StatusUnauthorized, xerrors.CodeWrongPassword, "Contraseña actual incorrecta")
	}

	hash, err := s.resetHasher.Hash(req.NewPassword)
	if err != nil {
		return xerrors.Upstream("Error al cambiar contraseña", err)
	}
	if err := s.repo.UpdatePassword(ctx, adminID, hash); err != nil {
		return s.adminLookupError(err)
	}

	s.logger.Info("admin password changed", zap.String("admin_id", adminID.String()))
	return nil
}

func (s *AuthService) adminLookupError(err error) error {
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.NotFound("Admin no encontrado")
	}
	return xerrors.Upstream("Error en el servidor", err)
}
