package order_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storefront-docs/internal/adapter/postgresql"
	"storefront-docs/internal/core/domain/models"
	"storefront-docs/pkg/config"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(ctx context.Context, cfg config.Config) (*OrderRepository, error) {
	pool, err := pgxpool.New(ctx, postgresql.BuildDSN(cfg))
	if err != nil {
		return &OrderRepository{}, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		return &OrderRepository{}, err
	}

	return &OrderRepository{
		pool: pool,
	}, nil
}

// GetOrder loads one order record with its line items. Numeric money
// columns are selected as text and parsed into decimals to avoid float
// round-tripping.
func (repo *OrderRepository) GetOrder(ctx context.Context, orderNumber string) (models.Order, error) {
	query := `
SELECT id::text,
       COALESCE(customer_name, ''),
       COALESCE(customer_email, ''),
       COALESCE(shipping_address, ''),
       created_at,
       COALESCE(payment_method, ''),
       COALESCE(payment_status, ''),
       COALESCE(status, ''),
       total_amount::text
FROM orders
WHERE id::text = $1
`

	var order models.Order
	var id, total string

	err := repo.pool.QueryRow(ctx, query, orderNumber).Scan(
		&id,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.ShippingAddress,
		&order.CreatedAt,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.Status,
		&total,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, models.ErrorOrderNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to query order: %w", err)
	}

	order.ID = models.FlexID(id)
	order.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return models.Order{}, fmt.Errorf("invalid total_amount for order %s: %w", id, err)
	}

	items, err := repo.getItems(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	order.Items = items

	return order, nil
}

func (repo *OrderRepository) getItems(ctx context.Context, orderID string) ([]models.LineItem, error) {
	query := `
SELECT COALESCE(product_name, ''),
       quantity,
       price::text,
       COALESCE(image_url, '')
FROM order_items
WHERE order_id::text = $1
ORDER BY id
`

	rows, err := repo.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []models.LineItem
	for rows.Next() {
		var item models.LineItem
		var price string

		if err := rows.Scan(&item.ProductName, &item.Quantity, &price, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for order %s: %w", orderID, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	return items, nil
}

func (repo *OrderRepository) Close() {
	if repo.pool != nil {
		repo.pool.Close()
	}
}
