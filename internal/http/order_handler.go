package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders *service.OrderService
	logger *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, logger: logger}
}

type createOrderResponse struct {
	Message         string `json:"message"`
	OrderID         int64  `json:"orderId"`
	OrderNumber     string `json:"orderNumber"`
	WhatsAppMessage string `json:"whatsappMessage"`
}

// POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid order items")
		return
	}

	confirmation, err := h.orders.PlaceOrder(r.Context(), &req)
	if errors.Is(err, service.ErrInvalidOrder) {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, createOrderResponse{
		Message:         "Order created successfully",
		OrderID:         confirmation.OrderID,
		OrderNumber:     confirmation.OrderNumber,
		WhatsAppMessage: confirmation.Message,
	})
}

type whatsAppLinkResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
	OrderNumber string `json:"orderNumber"`
}

// GET /api/orders/whatsapp/{orderNumber}
func (h *OrderHandler) WhatsAppLink(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	link, err := h.orders.ConfirmationLink(r.Context(), orderNumber)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, whatsAppLinkResponse{
		WhatsAppURL: link,
		OrderNumber: orderNumber,
	})
}

// GET /api/orders/{email}
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	orders, err := h.orders.OrdersByEmail(r.Context(), email)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, nonNil(orders))
}

type orderDetailResponse struct {
	Order *domain.Order      `json:"order"`
	Items []domain.OrderItem `json:"items"`
}

// GET /api/order/{orderNumber}
func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	order, items, err := h.orders.OrderByNumber(r.Context(), orderNumber)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, orderDetailResponse{
		Order: order,
		Items: nonNil(items),
	})
}
