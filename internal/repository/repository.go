package repository

import (
	"context"
	"errors"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
)

// Common errors returned by repositories
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("user with this email already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// UserRepository stores customer accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns its id.
	// Returns ErrDuplicateEmail if the email is already registered.
	CreateUser(ctx context.Context, user *domain.User) (int64, error)

	// UserByEmail returns the account with the given email, including
	// its password hash. Returns ErrUserNotFound if absent.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProductRepository stores catalog entries.
type ProductRepository interface {
	// ListActiveProducts returns active products ordered by category, name.
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)

	// ListProductsByCategory returns active products in one category,
	// ordered by name.
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// SearchProducts returns active products whose name, description or
	// category contains the query, case-insensitively.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)

	// ListAllProducts returns every product including inactive ones,
	// ordered by active state then creation time descending.
	ListAllProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct inserts a product and returns its id.
	CreateProduct(ctx context.Context, p *domain.Product) (int64, error)

	// UpdateProduct replaces the full row. Returns ErrProductNotFound
	// if the id does not exist.
	UpdateProduct(ctx context.Context, p *domain.Product) error

	// DeleteProduct permanently removes the row. Returns
	// ErrProductNotFound if the id does not exist.
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderRepository stores order headers and their line items.
type OrderRepository interface {
	// CreateOrder persists the header and all items atomically and
	// returns the new order id. Either everything is written or nothing.
	CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) (int64, error)

	// OrderByNumber returns the order with the given external number and
	// its items. Returns ErrOrderNotFound if absent.
	OrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, []domain.OrderItem, error)

	// OrdersByEmail returns a customer's orders newest first, each with
	// its item count.
	OrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error)

	// ListOrders returns all orders newest first, each with its item count.
	ListOrders(ctx context.Context) ([]domain.OrderSummary, error)

	// UpdateOrderStatus sets the status of one order. Returns
	// ErrOrderNotFound if the id does not exist.
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// Store is the full storage surface the server is wired against.
type Store interface {
	UserRepository
	ProductRepository
	OrderRepository

	Ping(ctx context.Context) error
	Close() error
}
