// internal/handlers/contact/contact_handler.go
package contact

import (
	"net/http"

	"catalog-service/internal/domain/contact"
	"catalog-service/internal/middleware"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/response"
	service "catalog-service/internal/service/contact"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

var submitRules = response.BindRules{
	Malformed: xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes"),
	Tags: map[string]error{
		"required":        xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes"),
		response.EmailTag: xerrors.Validation(xerrors.CodeInvalidEmailFormat, "Formato de email inválido"),
		"max":             xerrors.Validation(xerrors.CodeFieldTooLong, "Uno o más campos exceden el límite permitido"),
	},
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ========== Public Endpoints ==========

// Submit stores a contact form message. The stored row is not echoed back.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, submitRules)
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), &req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Mensaje enviado correctamente", nil)
}

// ========== Admin Endpoints ==========

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Mensajes obtenidos", messages)
}

func (h *ContactHandler) GetMessage(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	m, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Mensaje obtenido", m)
}

func (h *ContactHandler) UpdateMessage(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	var req contact.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, response.BindRules{})
		return
	}

	m, err := h.contactService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Mensaje actualizado", m)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	m, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Mensaje marcado como leído", m)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Mensaje eliminado", nil)
}
