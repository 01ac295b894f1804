package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*chi.Mux, *repository.Memory) {
	t.Helper()

	store := repository.NewMemory()
	router := NewRouter(RouterConfig{
		Store:    store,
		Accounts: service.NewAccountService(store),
		Orders:   service.NewOrderService(store, "27796989762"),
		Logger:   zap.NewNop(),
	})
	return router, store
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&out))
	return out
}

func seedProduct(t *testing.T, store *repository.Memory, name, category string, active bool) int64 {
	t.Helper()

	id, err := store.CreateProduct(context.Background(), &domain.Product{
		Name:          name,
		Category:      category,
		Size:          "30ml",
		Price:         decimal.NewFromFloat(49.99),
		StockQuantity: 100,
		Active:        active,
	})
	require.NoError(t, err)
	return id
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	health := decodeBody[healthResponse](t, recorder)
	require.Equal(t, "OK", health.Status)
	require.Equal(t, "Connected", health.Database)
}

func validOrderBody() map[string]any {
	return map[string]any{
		"customer": map[string]any{
			"firstName":  "Thandi",
			"lastName":   "Nkosi",
			"email":      "thandi@example.com",
			"phone":      "0821234567",
			"address":    "12 Protea Street",
			"city":       "Durban",
			"postalCode": "4001",
			"province":   "KwaZulu-Natal",
		},
		"items": []map[string]any{
			{"name": "Velvet Torrida", "category": "For Her", "size": "50ml", "price": 119.99, "quantity": 1},
			{"name": "Royal For Him", "category": "For Him", "size": "30ml", "price": 49.99, "quantity": 1},
		},
		"subtotal": 169.98,
		"total":    219.98,
	}
}
