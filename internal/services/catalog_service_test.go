// internal/services/catalog_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeedsDefaultsOnFirstList(t *testing.T) {
	svc := NewCatalogService(newTestDB(t), newTestConfig(t))

	products, err := svc.List()
	require.NoError(t, err)
	require.Len(t, products, 6)

	assert.Equal(t, "Cinematic Text Presets", products[0].Title)
	assert.Equal(t, "Multi-Platform Export Pack", products[5].Title)

	// Listing again must not seed a second time.
	again, err := svc.List()
	require.NoError(t, err)
	require.Len(t, again, 6)

	for i := range products {
		assert.Equal(t, products[i].ID, again[i].ID)
		assert.Equal(t, products[i].Title, again[i].Title)
	}
}

func TestCatalogSeedsFromJSONFile(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Catalog.SeedPath = "../../data/products.json"
	svc := NewCatalogService(newTestDB(t), cfg)

	products, err := svc.List()
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, 29.99, products[0].Price)
	assert.Equal(t, "presets", products[0].Category)
}

func TestCatalogFilterByCategory(t *testing.T) {
	svc := NewCatalogService(newTestDB(t), newTestConfig(t))

	topaz, err := svc.FilterByCategory("topaz")
	require.NoError(t, err)
	require.Len(t, topaz, 2)
	for _, p := range topaz {
		assert.Equal(t, "topaz", p.Category)
	}

	all, err := svc.FilterByCategory("all")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	empty, err := svc.FilterByCategory("")
	require.NoError(t, err)
	assert.Len(t, empty, 6)

	none, err := svc.FilterByCategory("fonts")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogCreateValidation(t *testing.T) {
	svc := NewCatalogService(newTestDB(t), newTestConfig(t))

	_, err := svc.Create(&CreateProductRequest{
		Description: "no title",
		Price:       9.99,
		Category:    "presets",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(&CreateProductRequest{
		Title:       "Free Pack",
		Description: "zero price",
		Price:       0,
		Category:    "presets",
	})
	assert.ErrorIs(t, err, ErrValidation)

	product, err := svc.Create(&CreateProductRequest{
		Title:       "LUT Bundle",
		Description: "10 cinematic LUTs",
		Price:       12.50,
		Category:    "presets",
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, "LUT Bundle", product.Title)
}

func TestCatalogDeleteIsIdempotent(t *testing.T) {
	svc := NewCatalogService(newTestDB(t), newTestConfig(t))

	products, err := svc.List()
	require.NoError(t, err)
	target := products[2].ID

	require.NoError(t, svc.Delete(target))
	require.NoError(t, svc.Delete(target))

	remaining, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, remaining, 5)
	for _, p := range remaining {
		assert.NotEqual(t, target, p.ID)
	}

	_, err = svc.GetByID(target)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogIDsAreNeverReused(t *testing.T) {
	svc := NewCatalogService(newTestDB(t), newTestConfig(t))

	products, err := svc.List()
	require.NoError(t, err)
	last := products[len(products)-1].ID

	require.NoError(t, svc.Delete(last))

	created, err := svc.Create(&CreateProductRequest{
		Title:       "Replacement Pack",
		Description: "created after a delete",
		Price:       5.99,
		Category:    "export",
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, last)
}
