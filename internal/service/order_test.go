package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderRequest() *OrderRequest {
	return &OrderRequest{
		Customer: Customer{
			FirstName:  "Thandi",
			LastName:   "Nkosi",
			Email:      "thandi@example.com",
			Phone:      "0821234567",
			Address:    "12 Protea Street",
			City:       "Durban",
			PostalCode: "4001",
			Province:   "KwaZulu-Natal",
		},
		Items: []CartItem{
			{Name: "Velvet Torrida", Category: "For Her", Size: "50ml", Price: decimal.NewFromFloat(119.99), Quantity: 1},
			{Name: "Royal For Him", Category: "For Him", Size: "30ml", Price: decimal.NewFromFloat(49.99), Quantity: 1},
		},
		Subtotal: decimal.NewFromFloat(169.98),
		Total:    decimal.NewFromFloat(219.98),
	}
}

func newOrderService(t *testing.T) (*OrderService, *repository.Memory) {
	t.Helper()
	store := repository.NewMemory()
	return NewOrderService(store, "27796989762"), store
}

func TestPlaceOrder_Success(t *testing.T) {
	svc, store := newOrderService(t)

	confirmation, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	assert.NotZero(t, confirmation.OrderID)
	assert.True(t, strings.HasPrefix(confirmation.OrderNumber, "PEAQ-"))

	order, items, err := store.OrderByNumber(context.Background(), confirmation.OrderNumber)
	require.NoError(t, err)

	assert.Equal(t, "Thandi Nkosi", order.CustomerName)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "50.00", order.ShippingFee.StringFixed(2))
	assert.True(t, order.TotalAmount.Equal(order.Subtotal.Add(order.ShippingFee)))

	require.Len(t, items, 2)
	assert.Equal(t, "Velvet Torrida", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)

	decoded, err := url.QueryUnescape(confirmation.Message)
	require.NoError(t, err)
	assert.Contains(t, decoded, "*Total: R219.98*")
	assert.Contains(t, decoded, "1. Velvet Torrida - 50ml - R119.99")
	assert.Contains(t, decoded, "2. Royal For Him - 30ml - R49.99")
}

func TestPlaceOrder_HonorsCallerOrderNumber(t *testing.T) {
	svc, _ := newOrderService(t)

	req := validOrderRequest()
	req.OrderNumber = "PEAQ-1700000000000"

	confirmation, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "PEAQ-1700000000000", confirmation.OrderNumber)
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	svc, _ := newOrderService(t)

	req := validOrderRequest()
	req.Items = nil

	_, err := svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestPlaceOrder_ItemMissingFields(t *testing.T) {
	svc, _ := newOrderService(t)

	cases := map[string]CartItem{
		"no name":    {Size: "30ml", Price: decimal.NewFromFloat(49.99)},
		"no size":    {Name: "Golden Moment", Price: decimal.NewFromFloat(49.99)},
		"zero price": {Name: "Golden Moment", Size: "30ml"},
	}

	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			req := validOrderRequest()
			req.Items = []CartItem{item}

			_, err := svc.PlaceOrder(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidOrder)
		})
	}
}

func TestPlaceOrder_MissingCustomerField(t *testing.T) {
	svc, _ := newOrderService(t)

	req := validOrderRequest()
	req.Customer.Phone = ""

	_, err := svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestPlaceOrder_DefaultsCategoryAndQuantity(t *testing.T) {
	svc, store := newOrderService(t)

	req := validOrderRequest()
	req.Items = []CartItem{{Name: "Golden Moment", Size: "30ml", Price: decimal.NewFromFloat(49.99)}}

	confirmation, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	_, items, err := store.OrderByNumber(context.Background(), confirmation.OrderNumber)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Uncategorized", items[0].Category)
	assert.Equal(t, 1, items[0].Quantity)
}

// The reconstructed message must match the placement-time message on every
// field except the date line, which tracks the render time.
func TestConfirmationLink_MatchesOriginalMessage(t *testing.T) {
	svc, _ := newOrderService(t)

	placedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }

	confirmation, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	svc.now = func() time.Time { return placedAt.Add(48 * time.Hour) }

	link, err := svc.ConfirmationLink(context.Background(), confirmation.OrderNumber)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/27796989762?text="))

	original, err := url.QueryUnescape(confirmation.Message)
	require.NoError(t, err)
	rebuilt, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/27796989762?text="))
	require.NoError(t, err)

	stripDate := func(message string) []string {
		var kept []string
		for _, line := range strings.Split(message, "\n") {
			if strings.HasPrefix(line, "Order Date: ") {
				continue
			}
			kept = append(kept, line)
		}
		return kept
	}

	assert.NotEqual(t, original, rebuilt)
	assert.Equal(t, stripDate(original), stripDate(rebuilt))
}

func TestConfirmationLink_UnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.ConfirmationLink(context.Background(), "PEAQ-missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestSetStatus_AcceptsAllRecognizedValuesFromAnyState(t *testing.T) {
	svc, _ := newOrderService(t)

	confirmation, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	// Every recognized value is accepted regardless of the current state,
	// including regressions like delivered -> shipped.
	sequence := []string{"delivered", "shipped", "cancelled", "pending", "confirmed"}
	for _, status := range sequence {
		assert.NoError(t, svc.SetStatus(context.Background(), confirmation.OrderID, status))
	}
}

func TestSetStatus_RejectsUnknownValue(t *testing.T) {
	svc, _ := newOrderService(t)

	confirmation, err := svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	for _, status := range []string{"", "refunded", "DELIVERED", "shipped "} {
		err := svc.SetStatus(context.Background(), confirmation.OrderID, status)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
}

func TestSetStatus_UnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.SetStatus(context.Background(), 999, "confirmed")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestGenerateOrderNumber(t *testing.T) {
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	first := generateOrderNumber(at)
	second := generateOrderNumber(at)

	assert.True(t, strings.HasPrefix(first, "PEAQ-1785578400000-"))
	assert.NotEqual(t, first, second, "same-millisecond numbers must not collide")
}
