package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/service"
)

// MemoryStore is a mutex-guarded in-memory implementation of the user,
// product and order stores. It backs the test suite and serves as a
// fallback when no database is configured. The mutex gives it the same
// guarantee the SQL stores get from conditional updates: stock checks
// and decrements for a product are serialized.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	byEmail      map[string]string
	products     map[string]*models.Product
	productOrder []string
	orders       map[string]*models.Order
	orderSeq     []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		byEmail:  make(map[string]string),
		products: make(map[string]*models.Product),
		orders:   make(map[string]*models.Order),
	}
}

// Users exposes the store as a service.UserStore.
func (m *MemoryStore) Users() service.UserStore { return memoryUsers{m} }

// Products exposes the store as a service.ProductStore.
func (m *MemoryStore) Products() service.ProductStore { return memoryProducts{m} }

// Orders exposes the store as a service.OrderStore.
func (m *MemoryStore) Orders() service.OrderStore { return memoryOrders{m} }

// AddProduct inserts a product; used for seeding and tests.
func (m *MemoryStore) AddProduct(product models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := product
	m.products[product.ID] = &copied
	m.productOrder = append(m.productOrder, product.ID)
}

func (m *MemoryStore) ProductCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products)
}

type memoryUsers struct{ m *MemoryStore }

func (s memoryUsers) Create(ctx context.Context, user *models.User) error {
	m := s.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[user.Email]; exists {
		return &service.ConflictError{Msg: "email already registered"}
	}
	copied := *user
	m.users[user.ID] = &copied
	m.byEmail[user.Email] = user.ID
	return nil
}

func (s memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[email]
	if !ok {
		return nil, &service.NotFoundError{Entity: "user"}
	}
	copied := *m.users[id]
	return &copied, nil
}

func (s memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, &service.NotFoundError{Entity: "user"}
	}
	copied := *user
	return &copied, nil
}

type memoryProducts struct{ m *MemoryStore }

func (s memoryProducts) List(ctx context.Context, filter service.ProductFilter) ([]models.Product, int64, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, id := range m.productOrder {
		p := m.products[id]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		matched = append(matched, *p)
	}

	total := int64(len(matched))
	start, ok := filter.Offset()
	if !ok || start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s memoryProducts) Get(ctx context.Context, id string) (*models.Product, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, &service.NotFoundError{Entity: "product", ID: id}
	}
	copied := *product
	return &copied, nil
}

func (s memoryProducts) Categories(ctx context.Context) ([]string, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var categories []string
	for _, id := range m.productOrder {
		category := m.products[id].Category
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (s memoryProducts) DecrementStock(ctx context.Context, id string, quantity int) error {
	m := s.m
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return &service.NotFoundError{Entity: "product", ID: id}
	}
	if product.Stock < quantity {
		return &service.InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
	}
	product.Stock -= quantity
	return nil
}

type memoryOrders struct{ m *MemoryStore }

// Create checks every item's stock before touching any of it, so a
// failure leaves no partial decrements behind.
func (s memoryOrders) Create(ctx context.Context, order *models.Order) error {
	m := s.m
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range order.Items {
		product, ok := m.products[item.ProductID]
		if !ok {
			return &service.NotFoundError{Entity: "product", ID: item.ProductID}
		}
		if product.Stock < item.Quantity {
			return &service.InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
		}
	}
	for _, item := range order.Items {
		m.products[item.ProductID].Stock -= item.Quantity
	}

	m.orders[order.ID] = copyOrder(order)
	m.orderSeq = append(m.orderSeq, order.ID)
	return nil
}

func (s memoryOrders) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[orderID]
	if !ok || order.UserID != userID {
		return nil, &service.NotFoundError{Entity: "order", ID: orderID}
	}
	return m.loadOrderLocked(order), nil
}

func (s memoryOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	m := s.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	var orders []models.Order
	for _, id := range m.orderSeq {
		order := m.orders[id]
		if order.UserID == userID {
			orders = append(orders, *m.loadOrderLocked(order))
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *MemoryStore) loadOrderLocked(order *models.Order) *models.Order {
	copied := copyOrder(order)
	for i := range copied.Items {
		if product, ok := m.products[copied.Items[i].ProductID]; ok {
			p := *product
			copied.Items[i].Product = &p
		}
	}
	return copied
}

func copyOrder(order *models.Order) *models.Order {
	copied := *order
	copied.Items = make([]models.OrderItem, len(order.Items))
	for i, item := range order.Items {
		item.Product = nil
		copied.Items[i] = item
	}
	return &copied
}
