package category

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"catalog-service/internal/domain/category"
	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/media"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var gifImage = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

type fakeRepo struct {
	items map[uuid.UUID]*category.Category
	calls int
}

func (r *fakeRepo) List(context.Context) ([]category.Category, error) {
	r.calls++
	var out []category.Category
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, c *category.Category) error {
	r.calls++
	c.ID, c.CreatedAt = uuid.New(), time.Now()
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(_ context.Context, id uuid.UUID, ch *category.Changes) (*category.Category, error) {
	r.calls++
	c, ok := r.items[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	if ch.Name != nil {
		c.Name, c.Slug = *ch.Name, *ch.Slug
	}
	if ch.DisplayOrder != nil {
		c.DisplayOrder = *ch.DisplayOrder
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) SetImageURL(_ context.Context, id uuid.UUID, url string) (*category.Category, error) {
	r.calls++
	c, ok := r.items[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	c.ImageURL = &url
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.calls++
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.calls++
	if _, ok := r.items[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeUploader struct {
	presets []media.Preset
}

func (u *fakeUploader) Upload(_ context.Context, _ []byte, p media.Preset) (*media.Asset, error) {
	u.presets = append(u.presets, p)
	return &media.Asset{URL: "https://res.cloudinary.com/demo/" + p.Folder + "/x.webp", PublicID: p.Folder + "/x"}, nil
}

func (u *fakeUploader) Destroy(context.Context, string) error { return nil }

func newService() (*CategoryService, *fakeRepo, *fakeUploader) {
	repo := &fakeRepo{items: map[uuid.UUID]*category.Category{}}
	up := &fakeUploader{}
	return NewCategoryService(repo, up, zap.NewNop()), repo, up
}

func TestCreateAndUpdate(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &category.CreateRequest{Name: "  "})
	appErr, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeMissingFields, appErr.Code)
	assert.Zero(t, repo.calls)

	c, err := svc.Create(ctx, &category.CreateRequest{Name: "Ganchos Ropa", DisplayOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "ganchos-ropa", c.Slug)

	_, err = svc.Update(ctx, c.ID, &category.UpdateRequest{})
	appErr, _ = xerrors.AsError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, xerrors.CodeEmptyUpdate, appErr.Code)

	name := "Colgadores"
	updated, err := svc.Update(ctx, c.ID, &category.UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "colgadores", updated.Slug)

	_, err = svc.Update(ctx, uuid.New(), &category.UpdateRequest{Name: &name})
	appErr, _ = xerrors.AsError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Categoría no encontrada", appErr.Message)
}

func TestDelete(t *testing.T) {
	svc, _, _ := newService()
	c, err := svc.Create(context.Background(), &category.CreateRequest{Name: "Perchas"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	appErr, ok := xerrors.AsError(svc.Delete(context.Background(), c.ID))
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestSetImage(t *testing.T) {
	svc, repo, up := newService()
	ctx := context.Background()
	c, err := svc.Create(ctx, &category.CreateRequest{Name: "Perchas"})
	require.NoError(t, err)

	updated, err := svc.SetImage(ctx, c.ID, bytes.NewReader(gifImage))
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Contains(t, *updated.ImageURL, "interplast/categories")
	assert.Equal(t, []media.Preset{media.CategoryImage}, up.presets)

	calls := repo.calls
	_, err = svc.SetImage(ctx, c.ID, strings.NewReader("not an image"))
	appErr, ok := xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeInvalidImage, appErr.Code)
	assert.Equal(t, calls, repo.calls)

	_, err = svc.SetImage(ctx, uuid.New(), bytes.NewReader(gifImage))
	appErr, ok = xerrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Len(t, up.presets, 1)
}
