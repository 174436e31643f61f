//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_order_action_put_test
package store_order_action_put

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
	AcceptByStore(ctx context.Context, storeID, orderID int64) (*entities.Order, error)
	Reject(ctx context.Context, storeID, orderID int64) (*entities.Order, error)
	StartPreparing(ctx context.Context, storeID, orderID int64) (*entities.Order, error)
	MarkReady(ctx context.Context, storeID, orderID int64) (*entities.Order, error)
	CompleteByStore(ctx context.Context, storeID, orderID int64) (*entities.Order, error)
}
