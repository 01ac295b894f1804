package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds the contact and delivery details submitted with an order.
// Everything except DeliveryInstructions is required.
type Customer struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	City                 string `json:"city"`
	PostalCode           string `json:"postalCode"`
	Province             string `json:"province"`
	DeliveryInstructions string `json:"deliveryInstructions"`
}

// CartItem is one entry of the submitted cart snapshot.
type CartItem struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderRequest is the full order submission. Subtotal and Total are taken
// from the client as-is; only the shipping fee is pinned server-side.
type OrderRequest struct {
	Customer    Customer        `json:"customer"`
	Items       []CartItem      `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
	OrderNumber string          `json:"orderNumber"`
}

// OrderConfirmation is returned after a successful placement. Message is
// the URL-encoded WhatsApp confirmation text.
type OrderConfirmation struct {
	OrderID     int64
	OrderNumber string
	Message     string
}

// OrderService owns order placement, retrieval and the status lifecycle.
type OrderService struct {
	repo repository.OrderRepository

	// whatsAppNumber receives confirmation deep links, international
	// format without the leading plus.
	whatsAppNumber string

	now func() time.Time
}

func NewOrderService(repo repository.OrderRepository, whatsAppNumber string) *OrderService {
	return &OrderService{
		repo:           repo,
		whatsAppNumber: whatsAppNumber,
		now:            time.Now,
	}
}

func (s *OrderService) validate(req *OrderRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	for _, item := range req.Items {
		if item.Name == "" || item.Size == "" || !item.Price.IsPositive() {
			return fmt.Errorf("%w: each product must have name, size, and price", ErrInvalidOrder)
		}
	}

	c := &req.Customer
	for _, field := range []string{
		c.FirstName, c.LastName, c.Email, c.Phone,
		c.Address, c.City, c.PostalCode, c.Province,
	} {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("%w: missing required customer field", ErrInvalidOrder)
		}
	}
	return nil
}

// PlaceOrder validates the submission, persists the header and all line
// items atomically, and renders the WhatsApp confirmation message.
func (s *OrderService) PlaceOrder(ctx context.Context, req *OrderRequest) (*OrderConfirmation, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = generateOrderNumber(s.now())
	}

	order := &domain.Order{
		OrderNumber:          orderNumber,
		CustomerName:         req.Customer.FirstName + " " + req.Customer.LastName,
		CustomerEmail:        req.Customer.Email,
		CustomerPhone:        req.Customer.Phone,
		CustomerAddress:      req.Customer.Address,
		CustomerCity:         req.Customer.City,
		CustomerPostalCode:   req.Customer.PostalCode,
		CustomerProvince:     req.Customer.Province,
		DeliveryInstructions: req.Customer.DeliveryInstructions,
		Subtotal:             req.Subtotal,
		ShippingFee:          domain.ShippingFee,
		TotalAmount:          req.Total,
		Status:               domain.OrderStatusPending,
		OrderDate:            s.now(),
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items[i] = domain.OrderItem{
			Name:     item.Name,
			Category: category,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: quantity,
		}
	}

	orderID, err := s.repo.CreateOrder(ctx, order, items)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	message := renderConfirmation(order, items, s.now())

	return &OrderConfirmation{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Message:     encodeConfirmation(message),
	}, nil
}

// generateOrderNumber combines a millisecond timestamp with a short random
// suffix so two carts in the same millisecond cannot collide.
func generateOrderNumber(at time.Time) string {
	return fmt.Sprintf("PEAQ-%d-%s", at.UnixMilli(), uuid.NewString()[:6])
}

// ConfirmationLink reloads the order from storage and rebuilds the WhatsApp
// deep link. The message is reconstructed from persisted rows, not from the
// original submission.
func (s *OrderService) ConfirmationLink(ctx context.Context, orderNumber string) (string, error) {
	order, items, err := s.repo.OrderByNumber(ctx, orderNumber)
	if err != nil {
		return "", err
	}

	message := renderConfirmation(order, items, s.now())
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, encodeConfirmation(message)), nil
}

// OrderByNumber returns one order and its items.
func (s *OrderService) OrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, []domain.OrderItem, error) {
	return s.repo.OrderByNumber(ctx, orderNumber)
}

// OrdersByEmail returns a customer's order history, newest first.
func (s *OrderService) OrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error) {
	return s.repo.OrdersByEmail(ctx, email)
}

// ListOrders returns every order, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	return s.repo.ListOrders(ctx)
}

// SetStatus updates an order's status. Any of the five recognized values
// is accepted regardless of the current state; anything else fails with
// ErrInvalidStatus.
func (s *OrderService) SetStatus(ctx context.Context, orderID int64, status string) error {
	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.repo.UpdateOrderStatus(ctx, orderID, next)
}
