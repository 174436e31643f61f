//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_status_put_test
package store_status_put

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
	SetStoreOpen(ctx context.Context, storeID int64, isOpen bool) (*entities.Store, error)
}
