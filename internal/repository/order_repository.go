package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// OrderFilter captures listing parameters.
type OrderFilter struct {
	Status         *domain.OrderStatus
	IncludeDeleted bool
}

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates the Postgres-backed repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, created_at, first_name, last_name, company, role, company_size,
               email, phone, drink, milk_type, status, pickup_code, ready_at, delivered_at, deleted_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (first_name, last_name, company, role, company_size, email, phone, drink, milk_type, status, pickup_code)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		order.FirstName,
		order.LastName,
		order.Company,
		order.Role,
		order.CompanySize,
		order.Email,
		order.Phone,
		order.Drink,
		order.MilkType,
		order.Status,
		order.PickupCode,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	const query = `
        UPDATE orders SET status=$1, ready_at=$2, delivered_at=$3, deleted_at=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		order.Status,
		order.ReadyAt,
		order.DeliveredAt,
		order.DeletedAt,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id=$1`, orderColumns)
	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CreatedAt,
		&order.FirstName,
		&order.LastName,
		&order.Company,
		&order.Role,
		&order.CompanySize,
		&order.Email,
		&order.Phone,
		&order.Drink,
		&order.MilkType,
		&order.Status,
		&order.PickupCode,
		&order.ReadyAt,
		&order.DeliveredAt,
		&order.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if !filter.IncludeDeleted {
		clauses = append(clauses, "deleted_at IS NULL")
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s ORDER BY created_at ASC`,
		orderColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.CreatedAt,
			&order.FirstName,
			&order.LastName,
			&order.Company,
			&order.Role,
			&order.CompanySize,
			&order.Email,
			&order.Phone,
			&order.Drink,
			&order.MilkType,
			&order.Status,
			&order.PickupCode,
			&order.ReadyAt,
			&order.DeliveredAt,
			&order.DeletedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
