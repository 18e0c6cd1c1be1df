package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

type OrderRepository interface {
	// Create inserts the order and all of its item snapshots in a single
	// transaction: an order either exists with its full line-item set or
	// not at all.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	SetGatewayOrderID(ctx context.Context, id uuid.UUID, gatewayOrderID string) error
	// MarkPaid transitions the order to paid and records the gateway
	// payment id, filtered by both order id and owner.
	MarkPaid(ctx context.Context, id, userID uuid.UUID, paymentID string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}

type pgOrderRepo struct{ pool *pgxpool.Pool }

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &pgOrderRepo{pool: pool}
}

func (r *pgOrderRepo) Create(ctx context.Context, order *model.Order) error {
	order.ID = uuid.New()

	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (id, user_id, order_number, status, subtotal, shipping_cost, tax,
			total_amount, currency, razorpay_order_id, razorpay_payment_id, shipping_address,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		 RETURNING created_at, updated_at`,
		order.ID, order.UserID, order.OrderNumber, order.Status, order.Subtotal,
		order.ShippingCost, order.Tax, order.TotalAmount, order.Currency,
		order.RazorpayOrderID, order.RazorpayPaymentID, address,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
		item := &order.Items[i]
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, variant_id, product_name,
				variant_name, color, size, design_url, mockup_url, quantity, unit_price, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())`,
			item.ID, item.OrderID, item.ProductID, item.VariantID, item.ProductName,
			item.VariantName, item.Color, item.Size, item.DesignURL, item.MockupURL,
			item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

const orderColumns = `id, user_id, order_number, status, subtotal, shipping_cost, tax,
	total_amount, currency, razorpay_order_id, razorpay_payment_id, shipping_address, created_at, updated_at`

func (r *pgOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *pgOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	rows.Close()

	for i := range orders {
		items, err := r.itemsForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *pgOrderRepo) SetGatewayOrderID(ctx context.Context, id uuid.UUID, gatewayOrderID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE orders SET razorpay_order_id = $2, updated_at = NOW() WHERE id = $1`,
		id, gatewayOrderID,
	)
	if err != nil {
		return fmt.Errorf("set gateway order id: %w", err)
	}
	return nil
}

func (r *pgOrderRepo) MarkPaid(ctx context.Context, id, userID uuid.UUID, paymentID string) (*model.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`UPDATE orders SET status = $3, razorpay_payment_id = $4, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+orderColumns,
		id, userID, model.OrderStatusPaid, paymentID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

func (r *pgOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *pgOrderRepo) itemsForOrder(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, product_id, variant_id, product_name, variant_name, color, size,
			design_url, mockup_url, quantity, unit_price
		 FROM order_items WHERE order_id = $1`, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.VariantID,
			&item.ProductName, &item.VariantName, &item.Color, &item.Size,
			&item.DesignURL, &item.MockupURL, &item.Quantity, &item.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	order := &model.Order{}
	var address []byte
	err := row.Scan(
		&order.ID, &order.UserID, &order.OrderNumber, &order.Status,
		&order.Subtotal, &order.ShippingCost, &order.Tax, &order.TotalAmount,
		&order.Currency, &order.RazorpayOrderID, &order.RazorpayPaymentID,
		&address, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	if len(address) > 0 {
		if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("decode shipping address: %w", err)
		}
	}
	return order, nil
}
