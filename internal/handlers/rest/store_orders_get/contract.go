//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_orders_get_test
package store_orders_get

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
	ListOrdersForStore(ctx context.Context, storeID int64) ([]entities.Order, error)
}
