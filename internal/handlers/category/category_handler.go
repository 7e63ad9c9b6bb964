// internal/handlers/category/category_handler.go
package category

import (
	"net/http"

	"catalog-service/internal/domain/category"
	"catalog-service/internal/middleware"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/media"
	"catalog-service/internal/pkg/response"
	service "catalog-service/internal/service/category"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

var createRules = response.BindRules{
	Tags: map[string]error{
		"required": xerrors.Validation(xerrors.CodeMissingFields, "El nombre es requerido"),
	},
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Categorías obtenidas", categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req category.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, createRules)
		return
	}

	cat, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Categoría creada", cat)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	var req category.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, response.BindRules{})
		return
	}

	cat, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Categoría actualizada", cat)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Categoría eliminada", nil)
}

// UploadImage replaces the category image with the multipart "image" field
func (h *CategoryHandler) UploadImage(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.ValidationError(c, xerrors.CodeInvalidImage, "No se recibió ninguna imagen")
		return
	}
	if file.Size > media.MaxImageSize {
		response.FromError(c, media.ClientError(media.ErrTooLarge))
		return
	}

	f, err := file.Open()
	if err != nil {
		response.ValidationError(c, xerrors.CodeInvalidImage, "No se recibió ninguna imagen")
		return
	}
	defer f.Close()

	cat, err := h.categoryService.SetImage(c.Request.Context(), id, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Imagen de categoría actualizada", cat)
}
