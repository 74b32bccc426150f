package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/service"
)

func TestMemoryDecrementStock(t *testing.T) {
	store := NewMemoryStore()
	store.AddProduct(models.Product{ID: "p1", Name: "Widget", Stock: 4})
	ctx := context.Background()

	require.NoError(t, store.Products().DecrementStock(ctx, "p1", 3))

	product, err := store.Products().Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, product.Stock)

	t.Run("below available stock", func(t *testing.T) {
		err := store.Products().DecrementStock(ctx, "p1", 2)
		assert.True(t, service.IsInsufficientStock(err))

		product, err := store.Products().Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 1, product.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		err := store.Products().DecrementStock(ctx, "nope", 1)
		assert.True(t, service.IsNotFound(err))
	})
}

func TestMemoryListHugePage(t *testing.T) {
	store := NewMemoryStore()
	SeedMemory(store)
	ctx := context.Background()

	// A page number large enough to overflow page*perPage arithmetic is
	// still just a page past the end: empty result, correct total, no panic.
	items, total, err := store.Products().List(ctx, service.ProductFilter{Page: 1 << 62, PerPage: 20})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(8), total)
}

func TestMemoryUserUniqueEmail(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Users().Create(ctx, &models.User{ID: "u1", Email: "a@example.com"}))

	err := store.Users().Create(ctx, &models.User{ID: "u2", Email: "a@example.com"})
	assert.True(t, service.IsConflict(err))
}

func TestMemoryOrderCopiesDoNotShareState(t *testing.T) {
	store := NewMemoryStore()
	store.AddProduct(models.Product{ID: "p1", Name: "Widget", Price: 5, Stock: 10})
	ctx := context.Background()

	order := &models.Order{
		ID:     "o1",
		UserID: "u1",
		Total:  10,
		Status: models.StatusPending,
		Items: []models.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 2, Price: 5},
		},
	}
	require.NoError(t, store.Orders().Create(ctx, order))

	fetched, err := store.Orders().Get(ctx, "u1", "o1")
	require.NoError(t, err)

	// Mutating the fetched copy must not leak into the store.
	fetched.Items[0].Quantity = 99
	again, err := store.Orders().Get(ctx, "u1", "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestSeedMemoryIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	SeedMemory(store)
	SeedMemory(store)
	assert.Equal(t, 8, store.ProductCount())
}
