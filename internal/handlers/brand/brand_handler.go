// internal/handlers/brand/brand_handler.go
package brand

import (
	"net/http"

	"catalog-service/internal/domain/brand"
	"catalog-service/internal/middleware"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/response"
	service "catalog-service/internal/service/brand"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandService *service.BrandService
}

var createRules = response.BindRules{
	Tags: map[string]error{
		"required": xerrors.Validation(xerrors.CodeMissingFields, "El nombre es requerido"),
	},
}

func NewBrandHandler(brandService *service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Marcas obtenidas", brands)
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req brand.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, createRules)
		return
	}

	b, err := h.brandService.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Marca creada", b)
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	var req brand.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, response.BindRules{})
		return
	}

	b, err := h.brandService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Marca actualizada", b)
}

func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Marca eliminada", nil)
}
