package service

import (
	"context"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartItem is one product/quantity pair of a client-submitted cart.
type CartItem struct {
	ProductID string
	Quantity  int
}

// Notifier receives fire-and-forget events after an order is placed.
type Notifier interface {
	OrderPlaced(order *models.Order)
}

// AuditLogger records mutations for later inspection. Failures are
// logged, never surfaced to the caller.
type AuditLogger interface {
	Record(ctx context.Context, action, entityID string, data map[string]interface{}) error
}

// OrderService converts a cart into a durable order with catalog-consistent
// stock, or fails the whole operation with no partial state.
type OrderService struct {
	orders   OrderStore
	products ProductStore
	cache    ProductCache
	audit    AuditLogger
	notifier Notifier
	logger   *zap.Logger
}

func NewOrderService(orders OrderStore, products ProductStore, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// WithCache attaches a product cache to invalidate after stock changes.
func (s *OrderService) WithCache(cache ProductCache) *OrderService {
	s.cache = cache
	return s
}

// WithAudit attaches an audit logger for order mutations.
func (s *OrderService) WithAudit(audit AuditLogger) *OrderService {
	s.audit = audit
	return s
}

// WithNotifier attaches a notifier for placed orders.
func (s *OrderService) WithNotifier(notifier Notifier) *OrderService {
	s.notifier = notifier
	return s
}

// Create validates the cart against the catalog, snapshots unit prices,
// and persists the order, its items and the stock decrements as one
// transactional unit. Any validation failure aborts with no side effects.
func (s *OrderService) Create(ctx context.Context, userID string, items []CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Msg: "order items are required"}
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, &ValidationError{Msg: "item quantity must be a positive integer"}
		}
	}

	now := time.Now()
	order := &models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var total float64
	for _, item := range items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.CanFulfill(item.Quantity) {
			return nil, &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
			}
		}

		// Price snapshot: read once here, never re-read from the catalog.
		subtotal := product.Price * float64(item.Quantity)
		total += subtotal

		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
			Product:   product,
		})
	}
	order.Total = total

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		if s.cache != nil {
			if err := s.cache.InvalidateProduct(ctx, item.ProductID); err != nil {
				s.logger.Warn("Failed to invalidate product cache",
					zap.String("product_id", item.ProductID), zap.Error(err))
			}
		}
		if item.Product != nil {
			item.Product.Stock -= item.Quantity
		}
	}

	if s.audit != nil {
		go func() {
			if err := s.audit.Record(context.Background(), "create_order", order.ID, map[string]interface{}{
				"user_id": order.UserID,
				"total":   order.Total,
			}); err != nil {
				s.logger.Warn("Failed to write audit log", zap.Error(err))
			}
		}()
	}
	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.Float64("total", order.Total),
		zap.Int("item_count", len(order.Items)))

	return order, nil
}

// Get returns an order only to its owner; anyone else sees not-found.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orders.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	fillSubtotals(order)
	return order, nil
}

// List returns the user's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		fillSubtotals(&orders[i])
	}
	return orders, nil
}

func fillSubtotals(order *models.Order) {
	for i := range order.Items {
		item := &order.Items[i]
		item.Subtotal = item.Price * float64(item.Quantity)
	}
}
