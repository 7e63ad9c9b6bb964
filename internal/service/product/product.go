// internal/service/product/product.go
package product

import (
	"context"
	"errors"
	"io"
	"strings"

	"catalog-service/internal/domain/product"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/media"
	"catalog-service/internal/pkg/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notFoundMessage = "Producto no encontrado"

type ProductService struct {
	repo   product.Repository
	images media.Uploader
	logger *zap.Logger
}

func NewProductService(repo product.Repository, images media.Uploader, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// ========== Catalog ==========

// List returns a catalog listing with nested category, brand and images
func (s *ProductService) List(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list products", zap.String("filter", string(filter)), zap.Error(err))
		return nil, xerrors.Upstream("Error al obtener productos", err)
	}
	if products == nil {
		products = []product.Product{}
	}
	return products, nil
}

// Get returns a single product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err)
	}
	return p, nil
}

// ========== Admin Operations ==========

// Create validates req and inserts a new product
func (s *ProductService) Create(ctx context.Context, req *product.CreateRequest) (*product.Product, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" || strings.TrimSpace(req.CategoryID) == "" {
		return nil, xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes")
	}

	categoryID, err := parseReference(req.CategoryID)
	if err != nil {
		return nil, err
	}
	brandID, err := parseReference(req.BrandID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = product.StatusAvailable
	}
	if !status.Valid() {
		return nil, xerrors.Validation(xerrors.CodeInvalidRequest, "Estado de producto inválido")
	}
	if err := checkDimensions(req.Length, req.Width, req.Height); err != nil {
		return nil, err
	}

	p := &product.Product{
		Code:        code,
		Name:        name,
		Slug:        slug.Make(name),
		Description: req.Description,
		CategoryID:  categoryID,
		BrandID:     brandID,
		Status:      status,
		IsFeatured:  req.IsFeatured,
		IsNew:       req.IsNew,
		Length:      req.Length,
		Width:       req.Width,
		Height:      req.Height,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			return nil, xerrors.Validation(xerrors.CodeInvalidId, "Categoría o marca inexistente")
		}
		s.logger.Error("failed to create product", zap.String("code", code), zap.Error(err))
		return nil, xerrors.Upstream("Error al crear producto", err)
	}

	s.logger.Info("product created",
		zap.String("product_id", p.ID.String()),
		zap.String("code", p.Code),
	)
	return p, nil
}

// Update applies a partial update. An empty category_id or brand_id clears
// the reference.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *product.UpdateRequest) (*product.Product, error) {
	if req.Empty() {
		return nil, xerrors.Validation(xerrors.CodeEmptyUpdate, "No hay campos para actualizar")
	}

	changes := &product.Changes{
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
		IsNew:       req.IsNew,
		Length:      req.Length,
		Width:       req.Width,
		Height:      req.Height,
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return nil, xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes")
		}
		changes.Code = &code
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, xerrors.Validation(xerrors.CodeMissingFields, "Campos obligatorios faltantes")
		}
		derived := slug.Make(name)
		changes.Name, changes.Slug = &name, &derived
	}
	if req.CategoryID.Set {
		if req.CategoryID.Invalid {
			return nil, xerrors.Validation(xerrors.CodeInvalidId, "ID de categoría inválido")
		}
		changes.CategoryID = &req.CategoryID.ID
	}
	if req.BrandID.Set {
		if req.BrandID.Invalid {
			return nil, xerrors.Validation(xerrors.CodeInvalidId, "ID de marca inválido")
		}
		changes.BrandID = &req.BrandID.ID
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, xerrors.Validation(xerrors.CodeInvalidRequest, "Estado de producto inválido")
		}
		changes.Status = req.Status
	}
	if err := checkDimensions(req.Length, req.Width, req.Height); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidInput) {
			return nil, xerrors.Validation(xerrors.CodeInvalidId, "Categoría o marca inexistente")
		}
		return nil, s.lookupError(err)
	}

	s.logger.Info("product updated", zap.String("product_id", id.String()))
	return p, nil
}

// Delete removes a product and, through the schema, its image rows
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.lookupError(err)
	}
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

// ========== Images ==========

// AddImage validates the upload, stores it on the CDN and appends it after
// the product's existing images.
func (s *ProductService) AddImage(ctx context.Context, productID uuid.UUID, r io.Reader) (*product.Image, error) {
	img, err := media.Read(r)
	if err != nil {
		return nil, media.ClientError(err)
	}

	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		return nil, s.lookupError(err)
	}

	asset, err := s.images.Upload(ctx, img.Data, media.ProductImage)
	if err != nil {
		s.logger.Error("image upload failed", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, media.ClientError(err)
	}

	current, err := s.repo.MaxImageOrder(ctx, productID)
	if err != nil {
		s.logger.Error("failed to read image order, asset left on cdn",
			zap.String("product_id", productID.String()),
			zap.String("public_id", asset.PublicID),
			zap.Error(err),
		)
		return nil, xerrors.Upstream("Error al guardar la imagen", err)
	}

	publicID := asset.PublicID
	image := &product.Image{
		ProductID:    productID,
		URL:          asset.URL,
		PublicID:     &publicID,
		DisplayOrder: product.NextDisplayOrder(current),
	}
	if err := s.repo.AddImage(ctx, image); err != nil {
		s.logger.Error("failed to store image, asset left on cdn",
			zap.String("product_id", productID.String()),
			zap.String("public_id", asset.PublicID),
			zap.Error(err),
		)
		return nil, s.lookupError(err)
	}

	s.logger.Info("product image added",
		zap.String("product_id", productID.String()),
		zap.String("image_id", image.ID.String()),
		zap.Int("display_order", image.DisplayOrder),
	)
	return image, nil
}

// DeleteImage removes the image row, then the CDN asset when one is known.
// A CDN failure is logged and does not fail the request.
func (s *ProductService) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	img, err := s.repo.DeleteImage(ctx, productID, imageID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return xerrors.NotFound("Imagen no encontrada")
		}
		return xerrors.Upstream("Error al eliminar la imagen", err)
	}

	if img.PublicID != nil && *img.PublicID != "" {
		if err := s.images.Destroy(ctx, *img.PublicID); err != nil {
			s.logger.Warn("failed to destroy cdn asset",
				zap.String("image_id", imageID.String()),
				zap.String("public_id", *img.PublicID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("product image deleted",
		zap.String("product_id", productID.String()),
		zap.String("image_id", imageID.String()),
	)
	return nil
}

func (s *ProductService) lookupError(err error) error {
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.NotFound(notFoundMessage)
	}
	s.logger.Error("product store error", zap.Error(err))
	return xerrors.Upstream("Error en el servidor", err)
}

// parseReference turns an optional foreign key from a create body into a
// nullable id. "" means no reference.
func parseReference(raw string) (uuid.NullUUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.NullUUID{}, nil
	}
	if len(raw) != 36 {
		return uuid.NullUUID{}, xerrors.Validation(xerrors.CodeInvalidId, "ID inválido")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.NullUUID{}, xerrors.Validation(xerrors.CodeInvalidId, "ID inválido")
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func checkDimensions(values ...*float64) error {
	for _, v := range values {
		if v != nil && *v < 0 {
			return xerrors.Validation(xerrors.CodeInvalidRequest, "Las dimensiones no pueden ser negativas")
		}
	}
	return nil
}
