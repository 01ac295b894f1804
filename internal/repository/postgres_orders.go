package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
)

// CreateOrder writes the order header and every line item in a single
// transaction. If any insert fails the whole order is rolled back.
func (p *Postgres) CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) (int64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	headerQuery := `INSERT INTO orders (
	    order_number, customer_name, customer_email, customer_phone,
	    customer_address, customer_city, customer_postal_code, customer_province,
	    delivery_instructions, subtotal, shipping_fee, total_amount, status
	  ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	  RETURNING id`

	var orderID int64
	err = tx.QueryRowContext(ctx, headerQuery,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.CustomerAddress,
		order.CustomerCity,
		order.CustomerPostalCode,
		order.CustomerProvince,
		order.DeliveryInstructions,
		order.Subtotal,
		order.ShippingFee,
		order.TotalAmount,
		order.Status,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (
	    order_id, product_name, product_category, product_size, product_price, quantity
	  ) VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			orderID,
			item.Name,
			item.Category,
			item.Size,
			item.Price,
			item.Quantity,
		); err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit order transaction: %w", err)
	}

	return orderID, nil
}

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone,
	customer_address, customer_city, customer_postal_code, customer_province,
	delivery_instructions, subtotal, shipping_fee, total_amount, status,
	order_date, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }, order *domain.Order) error {
	return row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.CustomerAddress,
		&order.CustomerCity,
		&order.CustomerPostalCode,
		&order.CustomerProvince,
		&order.DeliveryInstructions,
		&order.Subtotal,
		&order.ShippingFee,
		&order.TotalAmount,
		&order.Status,
		&order.OrderDate,
		&order.UpdatedAt,
	)
}

func (p *Postgres) OrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, []domain.OrderItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_number = $1`, orderColumns)

	var order domain.Order
	err := scanOrder(p.db.QueryRowContext(ctx, query, orderNumber), &order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query order by number: %w", err)
	}

	items, err := p.orderItems(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}

	return &order, items, nil
}

func (p *Postgres) orderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_name, product_category, product_size,
	            product_price, quantity
	          FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := p.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.Name,
			&item.Category,
			&item.Size,
			&item.Price,
			&item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

func (p *Postgres) OrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error) {
	query := fmt.Sprintf(`SELECT %s,
	    (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = orders.id) AS item_count
	  FROM orders WHERE customer_email = $1 ORDER BY order_date DESC`, orderColumns)
	return p.queryOrderSummaries(ctx, query, email)
}

func (p *Postgres) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	query := fmt.Sprintf(`SELECT %s,
	    (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = orders.id) AS item_count
	  FROM orders ORDER BY order_date DESC`, orderColumns)
	return p.queryOrderSummaries(ctx, query)
}

func (p *Postgres) queryOrderSummaries(ctx context.Context, query string, args ...any) ([]domain.OrderSummary, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.OrderSummary
	for rows.Next() {
		var summary domain.OrderSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.OrderNumber,
			&summary.CustomerName,
			&summary.CustomerEmail,
			&summary.CustomerPhone,
			&summary.CustomerAddress,
			&summary.CustomerCity,
			&summary.CustomerPostalCode,
			&summary.CustomerProvince,
			&summary.DeliveryInstructions,
			&summary.Subtotal,
			&summary.ShippingFee,
			&summary.TotalAmount,
			&summary.Status,
			&summary.OrderDate,
			&summary.UpdatedAt,
			&summary.ItemCount,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return orders, nil
}

func (p *Postgres) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := p.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return checkAffected(res, ErrOrderNotFound)
}
