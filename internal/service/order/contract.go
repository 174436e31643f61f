//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

// Repository владеет журналом заказов. Transition применяется атомарно и только
// если текущий статус заказа равен transition.From, иначе возвращается ErrStaleStatus.
type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Transition(ctx context.Context, transition entities.OrderTransition) (*entities.Order, error)

	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	ListByStore(ctx context.Context, storeID int64) ([]entities.Order, error)
	ListByCourier(ctx context.Context, courierID int64) ([]entities.Order, error)
	ListPending(ctx context.Context) ([]entities.Order, error)
	ListPendingCreatedBefore(ctx context.Context, before time.Time) ([]entities.Order, error)
	CountByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

type CatalogService interface {
	GetStore(ctx context.Context, id int64) (*entities.Store, error)
	GetProducts(ctx context.Context, ids []int64) ([]entities.Product, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type DeliveryTimeFactory interface {
	EstimateDelivery(storeType entities.StoreType, baseTime time.Time) time.Time
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
