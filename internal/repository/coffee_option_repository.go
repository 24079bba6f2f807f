package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// CoffeeOptionRepository encapsulates drink catalog persistence.
type CoffeeOptionRepository interface {
	ListAll(ctx context.Context) ([]domain.CoffeeOption, error)
	ListEnabled(ctx context.Context) ([]domain.CoffeeOption, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (*domain.CoffeeOption, error)
}

type coffeeOptionRepository struct {
	pool *pgxpool.Pool
}

// NewCoffeeOptionRepository instantiates the Postgres-backed repository.
func NewCoffeeOptionRepository(pool *pgxpool.Pool) CoffeeOptionRepository {
	return &coffeeOptionRepository{pool: pool}
}

const optionColumns = `id, name, display_name, uses_milk, enabled, sort_order`

func (r *coffeeOptionRepository) ListAll(ctx context.Context) ([]domain.CoffeeOption, error) {
	const query = `SELECT ` + optionColumns + ` FROM coffee_options ORDER BY sort_order ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOptions(rows)
}

func (r *coffeeOptionRepository) ListEnabled(ctx context.Context) ([]domain.CoffeeOption, error) {
	const query = `SELECT ` + optionColumns + ` FROM coffee_options WHERE enabled ORDER BY sort_order ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOptions(rows)
}

func (r *coffeeOptionRepository) SetEnabled(ctx context.Context, id string, enabled bool) (*domain.CoffeeOption, error) {
	const query = `
        UPDATE coffee_options SET enabled=$1 WHERE id=$2
        RETURNING ` + optionColumns
	var option domain.CoffeeOption
	if err := r.pool.QueryRow(ctx, query, enabled, id).Scan(
		&option.ID,
		&option.Name,
		&option.DisplayName,
		&option.UsesMilk,
		&option.Enabled,
		&option.SortOrder,
	); err != nil {
		return nil, err
	}
	return &option, nil
}

func scanOptions(rows pgx.Rows) ([]domain.CoffeeOption, error) {
	var result []domain.CoffeeOption
	for rows.Next() {
		var option domain.CoffeeOption
		if err := rows.Scan(
			&option.ID,
			&option.Name,
			&option.DisplayName,
			&option.UsesMilk,
			&option.Enabled,
			&option.SortOrder,
		); err != nil {
			return nil, err
		}
		result = append(result, option)
	}
	return result, rows.Err()
}
