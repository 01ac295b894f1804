package http

import (
	"net/http"
	"time"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterConfig carries everything the REST surface needs.
type RouterConfig struct {
	Store          repository.Store
	Accounts       *service.AccountService
	Orders         *service.OrderService
	Logger         *zap.Logger
	Authorize      Authorizer
	RequestTimeout time.Duration
	ImagesDir      string
}

// NewRouter assembles the full route tree.
func NewRouter(cfg RouterConfig) *chi.Mux {
	products := NewProductHandler(cfg.Store, cfg.Logger)
	accounts := NewAccountHandler(cfg.Accounts, cfg.Logger)
	orders := NewOrderHandler(cfg.Orders, cfg.Logger)
	admin := NewAdminHandler(cfg.Store, cfg.Orders, cfg.Logger)
	health := NewHealthHandler(cfg.Store)

	authorize := cfg.Authorize
	if authorize == nil {
		authorize = HeaderEmailAuthorizer
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(cfg.Logger))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Get("/products/search/{query}", products.Search)
		r.Get("/products/{category}", products.ListByCategory)

		r.Post("/register", accounts.Register)
		r.Post("/login", accounts.Login)

		r.Post("/orders", orders.Create)
		r.Get("/orders/whatsapp/{orderNumber}", orders.WhatsAppLink)
		r.Get("/orders/{email}", orders.History)
		r.Get("/order/{orderNumber}", orders.Detail)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminOnly(authorize))

			r.Get("/products", admin.ListProducts)
			r.Post("/products", admin.CreateProduct)
			r.Put("/products/{id}", admin.UpdateProduct)
			r.Delete("/products/{id}", admin.DeleteProduct)

			r.Get("/orders", admin.ListOrders)
			r.Put("/orders/{id}/status", admin.UpdateOrderStatus)
		})

		r.Get("/health", health.Check)
	})

	if cfg.ImagesDir != "" {
		fs := http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.ImagesDir)))
		r.Get("/images/*", fs.ServeHTTP)
	}

	return r
}
