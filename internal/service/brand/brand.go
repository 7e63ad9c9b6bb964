// internal/service/brand/brand.go
package brand

import (
	"context"
	"errors"
	"strings"

	"catalog-service/internal/domain/brand"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BrandService struct {
	repo   brand.Repository
	logger *zap.Logger
}

func NewBrandService(repo brand.Repository, logger *zap.Logger) *BrandService {
	return &BrandService{repo: repo, logger: logger}
}

func (s *BrandService) List(ctx context.Context) ([]brand.Brand, error) {
	brands, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list brands", zap.Error(err))
		return nil, xerrors.Upstream("Error al obtener marcas", err)
	}
	if brands == nil {
		brands = []brand.Brand{}
	}
	return brands, nil
}

func (s *BrandService) Create(ctx context.Context, req *brand.CreateRequest) (*brand.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, xerrors.Validation(xerrors.CodeMissingFields, "El nombre es requerido")
	}

	b := &brand.Brand{Name: name, Slug: slug.Make(name)}
	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("failed to create brand", zap.String("name", name), zap.Error(err))
		return nil, xerrors.Upstream("Error al crear marca", err)
	}

	s.logger.Info("brand created", zap.String("brand_id", b.ID.String()))
	return b, nil
}

// Update renames a brand. Name is the only mutable field.
func (s *BrandService) Update(ctx context.Context, id uuid.UUID, req *brand.UpdateRequest) (*brand.Brand, error) {
	if req.Name == nil {
		return nil, xerrors.Validation(xerrors.CodeEmptyUpdate, "No hay campos para actualizar")
	}
	name := strings.TrimSpace(*req.Name)
	if name == "" {
		return nil, xerrors.Validation(xerrors.CodeMissingFields, "El nombre es requerido")
	}

	b, err := s.repo.Update(ctx, id, name, slug.Make(name))
	if err != nil {
		return nil, s.lookupError(err)
	}

	s.logger.Info("brand updated", zap.String("brand_id", id.String()))
	return b, nil
}

func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.lookupError(err)
	}
	s.logger.Info("brand deleted", zap.String("brand_id", id.String()))
	return nil
}

func (s *BrandService) lookupError(err error) error {
	if errors.Is(err, xerrors.ErrNotFound) {
		return xerrors.NotFound("Marca no encontrada")
	}
	s.logger.Error("brand store error", zap.Error(err))
	return xerrors.Upstream("Error en el servidor", err)
}
