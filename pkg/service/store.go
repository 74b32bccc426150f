package service

import (
	"context"
	"math"

	"github.com/example/storefront/pkg/models"
)

// ProductFilter narrows a catalog listing. Category is an exact match,
// Search a case-insensitive substring match over name or description.
type ProductFilter struct {
	Category string
	Search   string
	Page     int
	PerPage  int
}

// Offset returns the zero-based item offset of the requested page. It
// reports false when the offset cannot be represented without integer
// overflow; such pages are past the end of any catalog and stores must
// treat them as empty rather than failing.
func (f ProductFilter) Offset() (int, bool) {
	if f.Page < 1 || f.PerPage < 1 {
		return 0, false
	}
	if f.Page-1 > math.MaxInt/f.PerPage {
		return 0, false
	}
	return (f.Page - 1) * f.PerPage, true
}

// UserStore persists account records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// ProductStore persists product records and their stock counters.
type ProductStore interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	// DecrementStock atomically reduces stock by quantity. It returns an
	// *InsufficientStockError when stock < quantity, leaving stock untouched.
	DecrementStock(ctx context.Context, id string, quantity int) error
}

// OrderStore persists orders together with their items. Create is
// transactional: it decrements stock for every item and writes the order
// and its items as a unit, or does nothing at all.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, userID, orderID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}
