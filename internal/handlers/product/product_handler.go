// internal/handlers/product/product_handler.go
package product

import (
	"net/http"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/middleware"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/media"
	"catalog-service/internal/pkg/response"
	service "catalog-service/internal/service/product"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *service.ProductService
}

var (
	createRules = response.BindRules{
		Tags: map[string]error{
			"required": xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes"),
			"oneof":    xerrors.Validation(xerrors.CodeInvalidRequest, "Estado de producto inválido"),
			"min":      xerrors.Validation(xerrors.CodeInvalidRequest, "Las dimensiones no pueden ser negativas"),
		},
	}
	updateRules = response.BindRules{
		Tags: map[string]error{
			"oneof": createRules.Tags["oneof"],
			"min":   createRules.Tags["min"],
		},
	}
)

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ========== Public Endpoints ==========

// ListProducts returns every product, newest first
func (h *ProductHandler) ListProducts(c *gin.Context) {
	h.list(c, product.FilterAll)
}

// ListComingSoon returns featured products by name
func (h *ProductHandler) ListComingSoon(c *gin.Context) {
	h.list(c, product.FilterComingSoon)
}

// ListNew returns products flagged as new, newest first
func (h *ProductHandler) ListNew(c *gin.Context) {
	h.list(c, product.FilterNew)
}

func (h *ProductHandler) list(c *gin.Context, filter product.Filter) {
	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Productos obtenidos", products)
}

// GetProduct returns one product with its category, brand and images
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	p, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Producto obtenido", p)
}

// ========== Admin Endpoints ==========

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req product.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, createRules)
		return
	}

	p, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Producto creado", p)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	var req product.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err, updateRules)
		return
	}

	p, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Producto actualizado", p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Producto eliminado", nil)
}

// UploadImage accepts a multipart "image" field and appends it to the
// product's gallery
func (h *ProductHandler) UploadImage(c *gin.Context) {
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

	img, err := h.productService.AddImage(c.Request.Context(), id, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Imagen subida", img)
}

func (h *ProductHandler) DeleteImage(c *gin.Context) {
	productID, ok := middleware.PathUUID(c, "id")
	if !ok {
		return
	}
	imageID, ok := middleware.PathUUID(c, "imageId")
	if !ok {
		return
	}

	if err := h.productService.DeleteImage(c.Request.Context(), productID, imageID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Imagen eliminada", nil)
}
