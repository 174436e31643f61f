//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	ListStores(ctx context.Context) ([]entities.Store, error)
	GetStore(ctx context.Context, id int64) (*entities.Store, error)
	UpdateStoreOpen(ctx context.Context, id int64, isOpen bool) (*entities.Store, error)

	ListProductsByStore(ctx context.Context, storeID int64) ([]entities.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)
	CreateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	ToggleProductAvailability(ctx context.Context, id int64) (*entities.Product, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
