package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminHandler mutates the catalog and order statuses. All routes sit
// behind the admin gate middleware.
type AdminHandler struct {
	products repository.ProductRepository
	orders   *service.OrderService
	logger   *zap.Logger
}

func NewAdminHandler(products repository.ProductRepository, orders *service.OrderService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{products: products, orders: orders, logger: logger}
}

// GET /api/admin/products
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListAllProducts(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, nonNil(products))
}

type productRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Size          string          `json:"size"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Description   string          `json:"description"`
	Featured      bool            `json:"featured"`
	StockQuantity int             `json:"stock_quantity"`
	Active        *bool           `json:"active"`

	// Email rides along for the admin gate's body check.
	Email string `json:"email"`
}

func (req *productRequest) toDomain() (*domain.Product, error) {
	if req.Name == "" || req.Category == "" || req.Size == "" || req.Price.IsZero() {
		return nil, errors.New("Name, category, size, and price are required")
	}
	if req.Price.IsNegative() {
		return nil, errors.New("Price must be a non-negative number")
	}

	stock := req.StockQuantity
	if stock <= 0 {
		stock = 100
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &domain.Product{
		Name:          req.Name,
		Category:      req.Category,
		Size:          req.Size,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		Featured:      req.Featured,
		StockQuantity: stock,
		Active:        active,
	}, nil
}

type createProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

// POST /api/admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, err := req.toDomain()
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	productID, err := h.products.CreateProduct(r.Context(), product)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, createProductResponse{
		Message:   "Product created successfully",
		ProductID: productID,
	})
}

// PUT /api/admin/products/{id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, err := req.toDomain()
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	product.ID = id

	if err := h.products.UpdateProduct(r.Context(), product); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Product updated successfully")
}

// DELETE /api/admin/products/{id}
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Product deleted successfully")
}

// GET /api/admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, nonNil(orders))
}

type statusRequest struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

// PUT /api/admin/orders/{id}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.orders.SetStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			respondMessage(w, http.StatusBadRequest, "Invalid status")
			return
		}
		respondServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Order status updated successfully")
}
