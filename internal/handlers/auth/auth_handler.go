// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"catalog-service/internal/domain/admin"
	"catalog-service/internal/middleware"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/response"
	authUsecase "catalog-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

var (
	loginRules = response.BindRules{
		Malformed: xerrors.Validation(xerrors.CodeMissingCredentials, "Email y contraseña son requeridos"),
		Tags: map[string]error{
			"required":        xerrors.Validation(xerrors.CodeMissingCredentials, "Email y contraseña son requeridos"),
			response.EmailTag: xerrors.Validation(xerrors.CodeInvalidEmailFormat, "Formato de email inválido"),
		},
	}
	profileRules = response.BindRules{
		Tags: map[string]error{
			"required":        xerrors.Validation(xerrors.CodeMissingFields, "Nombre y email son requeridos"),
			response.EmailTag: xerrors.Validation(xerrors.CodeInvalidEmailFormat, "Formato de email inválido"),
		},
	}
	passwordRules = response.BindRules{
		Tags: map[string]error{
			"required": xerrors.Validation(xerrors.CodeMissingFields, "Todos los campos son requeridos"),
			"eqfield":  xerrors.Validation(xerrors.CodePasswordMismatch, "Las contraseñas no coinciden"),
			"min":      xerrors.Validation(xerrors.CodeWeakPassword, "La contraseña debe tener al menos 8 caracteres"),
		},
	}
)

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Login ==========

// Login exchanges email and password for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, loginRules)
		return
	}

	loginResp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login exitoso", loginResp)
}

// ========== Profile ==========

// GetProfile returns the authenticated admin
func (h *AuthHandler) GetProfile(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	profile, err := h.authService.GetProfile(c.Request.Context(), adminID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Perfil obtenido", profile)
}

// UpdateProfile changes the admin's name and email
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	var req admin.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, profileRules)
		return
	}

	profile, err := h.authService.UpdateProfile(c.Request.Context(), adminID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Perfil actualizado correctamente", profile)
}

// ChangePassword replaces the admin's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	var req admin.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, passwordRules)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), adminID, &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Contraseña actualizada correctamente", nil)
}
