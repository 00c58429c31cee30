package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"restaurantbooking/internal/domain"
)

type menuItemRepository struct {
	DB *sql.DB
}

func NewMenuItemRepository(db *sql.DB) domain.MenuItemRepository {
	return &menuItemRepository{DB: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	prices, err := json.Marshal(item.SizesAndPrices)
	if err != nil {
		return fmt.Errorf("marshal sizes_and_prices: %w", err)
	}
	query := `
		INSERT INTO menu_items (name, description, category, sub_category, sizes_and_prices, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		item.Name, item.Description, item.Category, item.SubCategory, prices, item.Available, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	prices, err := json.Marshal(item.SizesAndPrices)
	if err != nil {
		return fmt.Errorf("marshal sizes_and_prices: %w", err)
	}
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, category = $3, sub_category = $4, sizes_and_prices = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Description, item.Category, item.SubCategory, prices, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE menu_items SET available = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, available, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, category, sub_category, sizes_and_prices, available, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *menuItemRepository) ListAvailable(ctx context.Context) ([]*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, category, sub_category, sizes_and_prices, available, created_at, updated_at
		FROM menu_items
		WHERE available = TRUE
		ORDER BY category, sub_category NULLS LAST, name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.MenuItem{}
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	item := &domain.MenuItem{}
	var subCategory sql.NullString
	var prices []byte
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Category, &subCategory,
		&prices, &item.Available, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if subCategory.Valid {
		item.SubCategory = &subCategory.String
	}
	if len(prices) > 0 {
		if err := json.Unmarshal(prices, &item.SizesAndPrices); err != nil {
			return nil, fmt.Errorf("unmarshal sizes_and_prices: %w", err)
		}
	}
	if item.SizesAndPrices == nil {
		item.SizesAndPrices = []domain.SizePrice{}
	}
	return item, nil
}
