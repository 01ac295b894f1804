package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
)

// Memory implements Store with in-memory maps. It exists so the service
// and handler layers can be exercised without a database; semantics match
// the Postgres implementation, including listing order.
type Memory struct {
	mu sync.RWMutex

	users    map[int64]*domain.User
	products map[int64]*domain.Product
	orders   map[int64]*domain.Order
	items    map[int64][]domain.OrderItem // orderID -> items

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
	nextItemID    int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[int64]*domain.User),
		products: make(map[int64]*domain.Product),
		orders:   make(map[int64]*domain.Order),
		items:    make(map[int64][]domain.OrderItem),
	}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }
func (m *Memory) Close() error                   { return nil }

func (m *Memory) CreateUser(_ context.Context, user *domain.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return 0, ErrDuplicateEmail
		}
	}

	m.nextUserID++
	stored := *user
	stored.ID = m.nextUserID
	stored.CreatedAt = time.Now()
	m.users[stored.ID] = &stored
	return stored.ID, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Memory) ListActiveProducts(_ context.Context) ([]domain.Product, error) {
	return m.collectProducts(func(p *domain.Product) bool { return p.Active }, byCategoryName), nil
}

func (m *Memory) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	return m.collectProducts(func(p *domain.Product) bool {
		return p.Active && p.Category == category
	}, byName), nil
}

func (m *Memory) SearchProducts(_ context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(query)
	return m.collectProducts(func(p *domain.Product) bool {
		return p.Active && (strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q))
	}, byCategoryName), nil
}

func (m *Memory) ListAllProducts(_ context.Context) ([]domain.Product, error) {
	return m.collectProducts(func(*domain.Product) bool { return true }, byActiveCreated), nil
}

func byCategoryName(a, b *domain.Product) bool {
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.Name < b.Name
}

func byName(a, b *domain.Product) bool { return a.Name < b.Name }

func byActiveCreated(a, b *domain.Product) bool {
	if a.Active != b.Active {
		return a.Active
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (m *Memory) collectProducts(keep func(*domain.Product) bool, less func(a, b *domain.Product) bool) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []domain.Product
	for _, p := range m.products {
		if keep(p) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return less(&result[i], &result[j]) })
	return result
}

func (m *Memory) CreateProduct(_ context.Context, p *domain.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextProductID++
	stored := *p
	stored.ID = m.nextProductID
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.products[stored.ID] = &stored
	return stored.ID, nil
}

func (m *Memory) UpdateProduct(_ context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.products[p.ID]
	if !ok {
		return ErrProductNotFound
	}

	updated := *p
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	m.products[p.ID] = &updated
	return nil
}

func (m *Memory) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *Memory) CreateOrder(_ context.Context, order *domain.Order, items []domain.OrderItem) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextOrderID++
	stored := *order
	stored.ID = m.nextOrderID
	now := time.Now()
	stored.OrderDate = now
	stored.UpdatedAt = now
	m.orders[stored.ID] = &stored

	copied := make([]domain.OrderItem, len(items))
	for i, item := range items {
		m.nextItemID++
		item.ID = m.nextItemID
		item.OrderID = stored.ID
		copied[i] = item
	}
	m.items[stored.ID] = copied

	return stored.ID, nil
}

func (m *Memory) OrderByNumber(_ context.Context, orderNumber string) (*domain.Order, []domain.OrderItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			order := *o
			items := append([]domain.OrderItem(nil), m.items[o.ID]...)
			return &order, items, nil
		}
	}
	return nil, nil, ErrOrderNotFound
}

func (m *Memory) OrdersByEmail(_ context.Context, email string) ([]domain.OrderSummary, error) {
	return m.collectOrders(func(o *domain.Order) bool { return o.CustomerEmail == email }), nil
}

func (m *Memory) ListOrders(_ context.Context) ([]domain.OrderSummary, error) {
	return m.collectOrders(func(*domain.Order) bool { return true }), nil
}

func (m *Memory) collectOrders(keep func(*domain.Order) bool) []domain.OrderSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []domain.OrderSummary
	for _, o := range m.orders {
		if keep(o) {
			result = append(result, domain.OrderSummary{
				Order:     *o,
				ItemCount: len(m.items[o.ID]),
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].OrderDate.Equal(result[j].OrderDate) {
			return result[i].ID > result[j].ID
		}
		return result[i].OrderDate.After(result[j].OrderDate)
	})
	return result
}

func (m *Memory) UpdateOrderStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}
