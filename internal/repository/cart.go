package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	Add(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, quantity int) error
	Delete(ctx context.Context, itemID, userID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type pgCartRepo struct{ pool *pgxpool.Pool }

func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &pgCartRepo{pool: pool}
}

const cartItemColumns = `id, user_id, product_id, variant_id, product_name, variant_name,
	color, size, design_url, mockup_url, quantity, unit_price, design_position, created_at, updated_at`

func (r *pgCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cartItemColumns+` FROM cart_items WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		var position []byte
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.VariantID,
			&item.ProductName, &item.VariantName, &item.Color, &item.Size,
			&item.DesignURL, &item.MockupURL, &item.Quantity, &item.UnitPrice,
			&position, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		if len(position) > 0 {
			item.DesignPosition = &model.DesignPosition{}
			if err := json.Unmarshal(position, item.DesignPosition); err != nil {
				return nil, fmt.Errorf("decode design position: %w", err)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *pgCartRepo) Add(ctx context.Context, item *model.CartItem) error {
	item.ID = uuid.New()

	var position []byte
	if item.DesignPosition != nil {
		var err error
		if position, err = json.Marshal(item.DesignPosition); err != nil {
			return fmt.Errorf("encode design position: %w", err)
		}
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO cart_items (id, user_id, product_id, variant_id, product_name, variant_name,
			color, size, design_url, mockup_url, quantity, unit_price, design_position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		 RETURNING created_at, updated_at`,
		item.ID, item.UserID, item.ProductID, item.VariantID, item.ProductName, item.VariantName,
		item.Color, item.Size, item.DesignURL, item.MockupURL, item.Quantity, item.UnitPrice, position,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *pgCartRepo) UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, quantity int) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		itemID, userID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pgCartRepo) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pgCartRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
