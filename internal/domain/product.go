package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Inactive products are hidden from public
// listings but kept for admin recovery (soft delete).
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Size          string          `json:"size"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Description   string          `json:"description"`
	Featured      bool            `json:"featured"`
	StockQuantity int             `json:"stock_quantity"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
