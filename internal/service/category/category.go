// internal/service/category/category.go
package category

import (
	"context"
	"errors"
	"io"
	"strings"

	"catalog-service/internal/domain/category"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/media"
	"catalog-service/internal/pkg/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	repo   category.Repository
	images media.Uploader
	logger *zap.Logger
}

func NewCategoryService(repo category.Repository, images media.Uploader, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// List returns categories by display order, then name
func (s *CategoryService) List(ctx context.Context) ([]category.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", zap.Error(err))
		return nil, xerrors.Upstream("Error al obtener categorías", err)
	}
	if categories == nil {
		categories = []category.Category{}
	}
	return categories, nil
}

// Create inserts a category with a slug derived from its name
func (s *CategoryService) Create(ctx context.Context, req *category.CreateRequest) (*category.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerrors.Validation(xerrors.CodeMissingFields, "El nombre es requerido")
	}

	c := &category.Category{
		Name:         name,
		Slug:         slug.Make(name),
		Description:  req.Description,
		Icon:         req.Icon,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create category", zap.String("name", name), zap.Error(err))
		return nil, xerrors.Upstream("Error al crear categoría", err)
	}

	s.logger.Info("category created", zap.String("category_id", c.ID.String()), zap.String("slug", c.Slug))
	return c, nil
}

// Update applies a partial update; a new name regenerates the slug
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateRequest) (*category.Category, error) {
	if req.Empty() {
		return nil, xerrors.Validation(xerrors.CodeEmptyUpdate, "No hay campos para actualizar")
	}

	changes := &category.Changes{
		Description:  req.Description,
		Icon:         req.Icon,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, xerrors.Validation(xerrors.CodeMissingFields, "El nombre es requerido")
		}
		derived := slug.Make(name)
		changes.Name, changes.Slug = &name, &derived
	}

	c, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, s.lookupError(err)
	}

	s.logger.Info("category updated", zap.String("category_id", id.String()))
	return c, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.lookupError(err)
	}
	s.logger.Info("category deleted", zap.String("category_id", id.String()))
	return nil
}

// SetImage uploads a category image and stores its URL
func (s *CategoryService) SetImage(ctx context.Context, id uuid.UUID, r io.Reader) (*category.Category, error) {
	img, err := media.Read(r)
	if err != nil {
		return nil, media.ClientError(err)
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, s.lookupError(err)
	}
	if !exists {
		return nil, xerrors.NotFound("Categoría no encontrada")
	}

	asset, err := s.images.Upload(ctx, img.Data, media.CategoryImage)
	if err != nil {
		s.logger.Error("category image upload failed", zap.String("category_id", id.String()), zap.Error(err))
		return nil, media.ClientError(err)
	}

	c, err := s.repo.SetImageURL(ctx, id, asset.URL)
	if err != nil {
		s.logger.Error("failed to store category image, asset left on cdn",
			zap.String("category_id", id.String()),
			zap.String("public_id", asset.PublicID),
			zap.Error(err),
		)
		return nil, s.lookupError(err)
	}

	s.logger.Info("category image set", zap.String("category_id", id.String()))
	return c, nil
}

func (s *CategoryService) lookupError(err error) error {
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.NotFound("Categoría no encontrada")
	}
	s.logger.Error("category store error", zap.Error(err))
	return xerrors.Upstream("Error en el servidor", err)
}
