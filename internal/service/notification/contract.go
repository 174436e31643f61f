//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"marketplace/internal/entities"
)

type ExecuteFn func(ctx context.Context, event entities.OrderEvent) error

type HandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
}

type Notifier interface {
	Notify(ctx context.Context, notification entities.Notification) error
}
