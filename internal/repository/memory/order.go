package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]entities.Order
	// pending хранит id ожидающих заказов в порядке создания.
	pending []int64
	nextID  int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[int64]entities.Order),
	}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	o.ID = r.nextID
	o = cloneOrder(o)
	r.orders[o.ID] = o
	if o.Status == entities.OrderPending {
		r.pending = append(r.pending, o.ID)
	}

	created := cloneOrder(o)
	return &created, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepository) Transition(_ context.Context, t entities.OrderTransition) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[t.OrderID]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	if o.Status != t.From {
		return nil, order.ErrStaleStatus
	}

	o.Status = t.To
	o.UpdatedAt = t.At
	if t.DeliveryPersonID != nil {
		o.DeliveryPersonID = clonePtr(t.DeliveryPersonID)
	}
	if t.AcceptedAt != nil {
		o.AcceptedAt = clonePtr(t.AcceptedAt)
	}
	if t.EstimatedDeliveryAt != nil {
		o.EstimatedDeliveryAt = clonePtr(t.EstimatedDeliveryAt)
	}
	if t.DeliveredAt != nil {
		o.DeliveredAt = clonePtr(t.DeliveredAt)
	}
	r.orders[o.ID] = o

	if t.From == entities.OrderPending {
		r.dropPending(o.ID)
	}

	updated := cloneOrder(o)
	return &updated, nil
}

func (r *OrderRepository) ListByUser(_ context.Context, userID int64) ([]entities.Order, error) {
	return r.filter(func(o *entities.Order) bool { return o.UserID == userID }), nil
}

func (r *OrderRepository) ListByStore(_ context.Context, storeID int64) ([]entities.Order, error) {
	return r.filter(func(o *entities.Order) bool { return o.StoreID == storeID }), nil
}

func (r *OrderRepository) ListByCourier(_ context.Context, courierID int64) ([]entities.Order, error) {
	return r.filter(func(o *entities.Order) bool {
		return o.DeliveryPersonID != nil && *o.DeliveryPersonID == courierID
	}), nil
}

func (r *OrderRepository) ListPending(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.pending))
	for _, id := range r.pending {
		orders = append(orders, cloneOrder(r.orders[id]))
	}
	return orders, nil
}

func (r *OrderRepository) ListPendingCreatedBefore(_ context.Context, before time.Time) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0)
	for _, id := range r.pending {
		o := r.orders[id]
		if o.CreatedAt.Before(before) {
			orders = append(orders, cloneOrder(o))
		}
	}
	return orders, nil
}

func (r *OrderRepository) CountByStatus(_ context.Context) ([]entities.OrderStatusCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses))
	for _, o := range r.orders {
		counts[o.Status]++
	}

	result := make([]entities.OrderStatusCount, 0, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		result = append(result, entities.OrderStatusCount{Status: status, Count: counts[status]})
	}
	return result, nil
}

func (r *OrderRepository) filter(match func(o *entities.Order) bool) []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0)
	for _, o := range r.orders {
		if match(&o) {
			orders = append(orders, cloneOrder(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

func (r *OrderRepository) dropPending(id int64) {
	for i, pendingID := range r.pending {
		if pendingID == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return
		}
	}
}
