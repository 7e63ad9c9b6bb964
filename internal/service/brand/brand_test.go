package brand

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"catalog-service/internal/domain/brand"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	items   map[uuid.UUID]*brand.Brand
	listErr error
}

func (r *fakeRepo) List(context.Context) ([]brand.Brand, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []brand.Brand
	for _, b := range r.items {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, b *brand.Brand) error {
	b.ID, b.CreatedAt = uuid.New(), time.Now()
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(_ context.Context, id uuid.UUID, name, slug string) (*brand.Brand, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	b.Name, b.Slug = name, slug
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newService() (*BrandService, *fakeRepo) {
	repo := &fakeRepo{items: map[uuid.UUID]*brand.Brand{}}
	return NewBrandService(repo, zap.NewNop()), repo
}

func TestBrandLifecycle(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	b, err := svc.Create(ctx, &brand.CreateRequest{Name: "Inter Plast"})
	require.NoError(t, err)
	assert.Equal(t, "inter-plast", b.Slug)

	name := "Interplast Pro"
	updated, err := svc.Update(ctx, b.ID, &brand.UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "interplast-pro", updated.Slug)

	brands, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 1)

	require.NoError(t, svc.Delete(ctx, b.ID))
	appErr, ok := xerrors.AsError(svc.Delete(ctx, b.ID))
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Marca no encontrada", appErr.Message)
}

func TestBrandValidation(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &brand.CreateRequest{})
	appErr, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeMissingFields, appErr.Code)

	_, err = svc.Update(ctx, uuid.New(), &brand.UpdateRequest{})
	appErr, ok = xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeEmptyUpdate, appErr.Code)

	assert.Empty(t, repo.items)
}

func TestBrandListEmptyAndFailure(t *testing.T) {
	svc, repo := newService()

	brands, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, brands)

	repo.listErr = errors.New("timeout")
	_, err = svc.List(context.Background())
	appErr, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}
