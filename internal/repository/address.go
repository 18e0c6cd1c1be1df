package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

type AddressRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Address, error)
	Create(ctx context.Context, addr *model.Address) error
	SetDefault(ctx context.Context, id, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type pgAddressRepo struct{ pool *pgxpool.Pool }

func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &pgAddressRepo{pool: pool}
}

const addressColumns = `id, user_id, full_name, address_line1, address_line2, city, state,
	postal_code, country, phone, is_default, created_at, updated_at`

func (r *pgAddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *addr)
	}
	return addresses, nil
}

func (r *pgAddressRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE id = $1 AND user_id = $2`, id, userID,
	)
	addr, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return addr, nil
}

func (r *pgAddressRepo) Create(ctx context.Context, addr *model.Address) error {
	addr.ID = uuid.New()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Creating a new default must unseat any existing one in the same
	// transaction so there is never a window with two defaults.
	if addr.IsDefault {
		if _, err := tx.Exec(ctx,
			`UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default`,
			addr.UserID,
		); err != nil {
			return fmt.Errorf("unset default addresses: %w", err)
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO addresses (id, user_id, full_name, address_line1, address_line2, city, state,
			postal_code, country, phone, is_default, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		 RETURNING created_at, updated_at`,
		addr.ID, addr.UserID, addr.FullName, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.State, addr.PostalCode, addr.Country, addr.Phone, addr.IsDefault,
	).Scan(&addr.CreatedAt, &addr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *pgAddressRepo) SetDefault(ctx context.Context, id, userID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default`,
		userID,
	); err != nil {
		return fmt.Errorf("unset default addresses: %w", err)
	}

	ct, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (r *pgAddressRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanAddress(row pgx.Row) (*model.Address, error) {
	addr := &model.Address{}
	err := row.Scan(
		&addr.ID, &addr.UserID, &addr.FullName, &addr.AddressLine1, &addr.AddressLine2,
		&addr.City, &addr.State, &addr.PostalCode, &addr.Country, &addr.Phone,
		&addr.IsDefault, &addr.CreatedAt, &addr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan address: %w", err)
	}
	return addr, nil
}
