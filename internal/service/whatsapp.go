package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
)

// renderConfirmation builds the WhatsApp order-confirmation text. Field
// order and formatting are fixed: regenerating the message from persisted
// rows must reproduce the placement-time message except for the date line.
func renderConfirmation(order *domain.Order, items []domain.OrderItem, at time.Time) string {
	var b strings.Builder

	b.WriteString("🛍️ *NEW ORDER - PeaQ Body Care*\n\n")
	fmt.Fprintf(&b, "*Order Number:* %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "*Customer:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Phone:* %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "*Email:* %s\n\n", order.CustomerEmail)

	b.WriteString("*Delivery Address:*\n")
	fmt.Fprintf(&b, "%s\n", order.CustomerAddress)
	fmt.Fprintf(&b, "%s, %s\n", order.CustomerCity, order.CustomerPostalCode)
	fmt.Fprintf(&b, "%s\n\n", order.CustomerProvince)

	b.WriteString("*Order Items:*\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s - %s - R%s\n", i+1, item.Name, item.Size, item.Price.StringFixed(2))
	}

	b.WriteString("\n*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: R%s\n", order.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Shipping: R%s\n", order.ShippingFee.StringFixed(2))
	fmt.Fprintf(&b, "*Total: R%s*\n\n", order.TotalAmount.StringFixed(2))

	if order.DeliveryInstructions != "" {
		b.WriteString("*Delivery Instructions:*\n")
		fmt.Fprintf(&b, "%s\n\n", order.DeliveryInstructions)
	}

	fmt.Fprintf(&b, "Order Date: %s\n", at.Format("2006-01-02 15:04:05"))
	b.WriteString("Payment Method: Cash on Delivery")

	return b.String()
}

// encodeConfirmation escapes the message for the text query parameter of a
// wa.me deep link.
func encodeConfirmation(message string) string {
	return url.QueryEscape(message)
}
