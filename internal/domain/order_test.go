package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	invalid := []OrderStatus{"", "PENDING", "refunded", "delivered ", "unknown"}
	for _, s := range invalid {
		assert.False(t, s.IsValid(), "expected %q to be invalid", s)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())

	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestShippingFee(t *testing.T) {
	assert.Equal(t, "50.00", ShippingFee.StringFixed(2))
}
