//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_order_action_put_test
package courier_order_action_put

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkPickedUp(ctx context.Context, courierID, orderID int64) (*entities.Order, error)
	MarkDelivered(ctx context.Context, courierID, orderID int64) (*entities.Order, error)
}
