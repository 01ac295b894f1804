package http

import (
	"net/http"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler serves the public catalog. Inactive products are never
// visible through these routes.
type ProductHandler struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewProductHandler(products repository.ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListActiveProducts(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, nonNil(products))
}

// GET /api/products/{category}
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.products.ListProductsByCategory(r.Context(), category)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, nonNil(products))
}

// GET /api/products/search/{query}
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	products, err := h.products.SearchProducts(r.Context(), query)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, nonNil(products))
}

// nonNil keeps empty listings encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
