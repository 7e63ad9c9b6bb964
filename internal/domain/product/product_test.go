package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalIDUnmarshal(t *testing.T) {
	const id = "8f14e45f-ceea-467f-a8f7-1b2c3d4e5f60"

	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category_id":"","brand_id":null}`), &req))
	assert.True(t, req.CategoryID.Set)
	assert.False(t, req.CategoryID.ID.Valid)
	assert.False(t, req.CategoryID.Invalid)
	assert.True(t, req.BrandID.Set)
	assert.False(t, req.BrandID.ID.Valid)

	req = UpdateRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"brand_id":"`+id+`"}`), &req))
	assert.False(t, req.CategoryID.Set)
	assert.True(t, req.BrandID.ID.Valid)
	assert.Equal(t, id, req.BrandID.ID.UUID.String())

	req = UpdateRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"brand_id":"abc","category_id":42}`), &req))
	assert.True(t, req.BrandID.Invalid)
	assert.True(t, req.CategoryID.Invalid)
}

func TestUpdateRequestEmpty(t *testing.T) {
	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.Empty())

	require.NoError(t, json.Unmarshal([]byte(`{"category_id":null}`), &req))
	assert.False(t, req.Empty())
}

func TestSortImages(t *testing.T) {
	images := []Image{
		{URL: "c", DisplayOrder: 2},
		{URL: "a", DisplayOrder: 0},
		{URL: "b1", DisplayOrder: 1},
		{URL: "b2", DisplayOrder: 1},
	}
	SortImages(images)

	var urls []string
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, urls)
}

func TestNextDisplayOrder(t *testing.T) {
	assert.Equal(t, 0, NextDisplayOrder(nil))
	three := 3
	assert.Equal(t, 4, NextDisplayOrder(&three))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusOutOfStock.Valid())
	assert.False(t, Status("discontinued").Valid())
}
