package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, store_id, products, total, delivery_address, payment_method, status,
	delivery_person_id, created_at, updated_at, accepted_at, estimated_delivery_at, delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&o)
	query := `INSERT INTO orders (user_id, store_id, products, total, delivery_address, payment_method,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns

	var created OrderDB
	err := scan(r.querier.QueryRow(
		ctx,
		query,
		orderModel.UserID,
		orderModel.StoreID,
		orderModel.Products,
		orderModel.Total,
		orderModel.DeliveryAddress,
		orderModel.PaymentMethod,
		orderModel.Status,
		orderModel.CreatedAt,
		orderModel.UpdatedAt,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}
	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var orderModel OrderDB
	err := scan(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}
	return ToDomain(&orderModel), nil
}

// Transition обновляет заказ только если его статус все еще равен transition.From.
func (r *Repository) Transition(ctx context.Context, t entities.OrderTransition) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", t.To.String()).
		Set("updated_at", t.At)

	// опционные поля
	if t.DeliveryPersonID != nil {
		builder = builder.Set("delivery_person_id", *t.DeliveryPersonID)
	}
	if t.AcceptedAt != nil {
		builder = builder.Set("accepted_at", *t.AcceptedAt)
	}
	if t.EstimatedDeliveryAt != nil {
		builder = builder.Set("estimated_delivery_at", *t.EstimatedDeliveryAt)
	}
	if t.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *t.DeliveredAt)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": t.OrderID, "status": t.From.String()}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository build query error: %w", err)
	}

	var orderModel OrderDB
	err = scan(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err == nil {
		return ToDomain(&orderModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, t.OrderID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}
	if !exists {
		return nil, order.ErrOrderNotFound
	}
	return nil, order.ErrStaleStatus
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns).From("orders").Where(sq.Eq{"user_id": userID}).OrderBy("id"))
}

func (r *Repository) ListByStore(ctx context.Context, storeID int64) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns).From("orders").Where(sq.Eq{"store_id": storeID}).OrderBy("id"))
}

func (r *Repository) ListByCourier(ctx context.Context, courierID int64) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns).From("orders").Where(sq.Eq{"delivery_person_id": courierID}).OrderBy("id"))
}

func (r *Repository) ListPending(ctx context.Context) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns).From("orders").
		Where(sq.Eq{"status": entities.OrderPending.String()}).
		OrderBy("created_at", "id"))
}

func (r *Repository) ListPendingCreatedBefore(ctx context.Context, before time.Time) ([]entities.Order, error) {
	return r.list(ctx, qb.Select(orderColumns).From("orders").
		Where(sq.Eq{"status": entities.OrderPending.String()}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at", "id"))
}

func (r *Repository) CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	rows, err := r.querier.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	result := make([]entities.OrderStatusCount, 0, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		result = append(result, entities.OrderStatusCount{Status: status, Count: counts[status]})
	}
	return result, nil
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository build query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var o OrderDB
		if err := scan(rows, &o); err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(&o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}
	return orders, nil
}

func scan(row pgx.Row, o *OrderDB) error {
	return row.Scan(
		&o.ID,
		&o.UserID,
		&o.StoreID,
		&o.Products,
		&o.Total,
		&o.DeliveryAddress,
		&o.PaymentMethod,
		&o.Status,
		&o.DeliveryPersonID,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.AcceptedAt,
		&o.EstimatedDeliveryAt,
		&o.DeliveredAt,
	)
}
