package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
)

func setupCatalog(t *testing.T) (*service.CatalogService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	repository.SeedMemory(store)
	return service.NewCatalogService(store.Products(), nil, zap.NewNop()), store
}

func TestListPagination(t *testing.T) {
	catalog, _ := setupCatalog(t)
	ctx := context.Background()

	// 8 seeded products, page 2 of 3 per page: items 4-6 in catalog order.
	page, err := catalog.List(ctx, service.ProductFilter{Page: 2, PerPage: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Professional Camera Lens", page.Items[0].Name)
	assert.Equal(t, "Bestselling Novel", page.Items[1].Name)
	assert.Equal(t, "Yoga Mat Premium", page.Items[2].Name)
	assert.Equal(t, int64(8), page.Total)
	assert.Equal(t, 3, page.Pages)

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page, err := catalog.List(ctx, service.ProductFilter{Page: 4, PerPage: 3})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(8), page.Total)
	})

	t.Run("astronomically large page is empty, not an error", func(t *testing.T) {
		page, err := catalog.List(ctx, service.ProductFilter{Page: 1 << 62, PerPage: 20})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(8), page.Total)
	})

	t.Run("defaults applied for zero page and size", func(t *testing.T) {
		page, err := catalog.List(ctx, service.ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Items, 8)
	})
}

func TestListCategoryFilter(t *testing.T) {
	catalog, _ := setupCatalog(t)

	page, err := catalog.List(context.Background(), service.ProductFilter{Category: "Electronics", Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	for _, p := range page.Items {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestListSearch(t *testing.T) {
	catalog, _ := setupCatalog(t)
	ctx := context.Background()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		page, err := catalog.List(ctx, service.ProductFilter{Search: "YOGA", Page: 1, PerPage: 20})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Yoga Mat Premium", page.Items[0].Name)
	})

	t.Run("matches name or description", func(t *testing.T) {
		// "premium" appears in one name and one description.
		page, err := catalog.List(ctx, service.ProductFilter{Search: "premium", Page: 1, PerPage: 20})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		page, err := catalog.List(ctx, service.ProductFilter{Search: "flux capacitor", Page: 1, PerPage: 20})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(0), page.Total)
	})
}

func TestGetProduct(t *testing.T) {
	catalog, _ := setupCatalog(t)
	ctx := context.Background()

	page, err := catalog.List(ctx, service.ProductFilter{Page: 1, PerPage: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	product, err := catalog.Get(ctx, page.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, page.Items[0].Name, product.Name)

	_, err = catalog.Get(ctx, "missing-id")
	assert.True(t, service.IsNotFound(err))
}

func TestCategories(t *testing.T) {
	catalog, _ := setupCatalog(t)

	categories, err := catalog.Categories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Electronics", "Clothing", "Books", "Sports", "Home"}, categories)
}
