//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_availability_put_test
package product_availability_put

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
	ToggleProductAvailability(ctx context.Context, productID int64) (*entities.Product, error)
}
