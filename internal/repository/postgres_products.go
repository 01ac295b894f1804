package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
)

const productColumns = `id, name, category, size, price, image_url, description,
	featured, stock_quantity, active, created_at, updated_at`

func (p *Postgres) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE active = TRUE
		ORDER BY category, name`, productColumns)
	return p.queryProducts(ctx, query)
}

func (p *Postgres) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category = $1 AND active = TRUE
		ORDER BY name`, productColumns)
	return p.queryProducts(ctx, query, category)
}

func (p *Postgres) SearchProducts(ctx context.Context, search string) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products
		WHERE active = TRUE
		  AND (name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1)
		ORDER BY category, name`, productColumns)
	return p.queryProducts(ctx, query, "%"+search+"%")
}

func (p *Postgres) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products
		ORDER BY active DESC, created_at DESC`, productColumns)
	return p.queryProducts(ctx, query)
}

func (p *Postgres) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var prod domain.Product
		if err := rows.Scan(
			&prod.ID,
			&prod.Name,
			&prod.Category,
			&prod.Size,
			&prod.Price,
			&prod.ImageURL,
			&prod.Description,
			&prod.Featured,
			&prod.StockQuantity,
			&prod.Active,
			&prod.CreatedAt,
			&prod.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, prod)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (p *Postgres) CreateProduct(ctx context.Context, prod *domain.Product) (int64, error) {
	query := `INSERT INTO products (name, category, size, price, image_url, description,
	            featured, stock_quantity, active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	var id int64
	err := p.db.QueryRowContext(ctx, query,
		prod.Name,
		prod.Category,
		prod.Size,
		prod.Price,
		prod.ImageURL,
		prod.Description,
		prod.Featured,
		prod.StockQuantity,
		prod.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (p *Postgres) UpdateProduct(ctx context.Context, prod *domain.Product) error {
	query := `UPDATE products
	          SET name = $1, category = $2, size = $3, price = $4, image_url = $5,
	              description = $6, featured = $7, stock_quantity = $8, active = $9,
	              updated_at = NOW()
	          WHERE id = $10`

	res, err := p.db.ExecContext(ctx, query,
		prod.Name,
		prod.Category,
		prod.Size,
		prod.Price,
		prod.ImageURL,
		prod.Description,
		prod.Featured,
		prod.StockQuantity,
		prod.Active,
		prod.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return checkAffected(res, ErrProductNotFound)
}

func (p *Postgres) DeleteProduct(ctx context.Context, id int64) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return checkAffected(res, ErrProductNotFound)
}

func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
