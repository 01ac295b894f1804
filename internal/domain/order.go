package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingFee is the flat delivery charge applied to every order.
var ShippingFee = decimal.NewFromFloat(50.00)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the five recognized statuses.
// Any recognized status may be set from any prior state; the transition
// graph is deliberately not enforced here.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is a persisted order header. Customer contact and address fields
// are denormalized; the only link to a User is the email value.
type Order struct {
	ID                   int64           `json:"id"`
	OrderNumber          string          `json:"order_number"`
	CustomerName         string          `json:"customer_name"`
	CustomerEmail        string          `json:"customer_email"`
	CustomerPhone        string          `json:"customer_phone"`
	CustomerAddress      string          `json:"customer_address"`
	CustomerCity         string          `json:"customer_city"`
	CustomerPostalCode   string          `json:"customer_postal_code"`
	CustomerProvince     string          `json:"customer_province"`
	DeliveryInstructions string          `json:"delivery_instructions"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	ShippingFee          decimal.Decimal `json:"shipping_fee"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Status               OrderStatus     `json:"status"`
	OrderDate            time.Time       `json:"order_date"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// OrderItem is a line item owned by exactly one order. Product fields are
// snapshots taken at purchase time; they do not reference the catalog.
type OrderItem struct {
	ID       int64           `json:"id"`
	OrderID  int64           `json:"order_id"`
	Name     string          `json:"product_name"`
	Category string          `json:"product_category"`
	Size     string          `json:"product_size"`
	Price    decimal.Decimal `json:"product_price"`
	Quantity int             `json:"quantity"`
}

// OrderSummary is an order header plus its line-item count, as returned
// by history and admin listings.
type OrderSummary struct {
	Order
	ItemCount int `json:"item_count"`
}
