package catalog

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Catalog struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Catalog {
	return &Catalog{
		repository: repository,
		txManager:  txManager,
	}
}

// ListOpenStores возвращает только открытые магазины в порядке добавления.
func (c *Catalog) ListOpenStores(ctx context.Context) ([]entities.Store, error) {
	stores, err := c.repository.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	open := make([]entities.Store, 0, len(stores))
	for _, store := range stores {
		if store.IsOpen {
			open = append(open, store)
		}
	}
	return open, nil
}

func (c *Catalog) GetStore(ctx context.Context, id int64) (*entities.Store, error) {
	if !isValidID(id) {
		return nil, ErrInvalidStoreID
	}

	store, err := c.repository.GetStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return store, nil
}

// ListAvailableProducts не смотрит на то, открыт ли магазин: это проверяется при оформлении заказа.
func (c *Catalog) ListAvailableProducts(ctx context.Context, storeID int64) ([]entities.Product, error) {
	if !isValidID(storeID) {
		return nil, ErrInvalidStoreID
	}

	products, err := c.repository.ListProductsByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	available := make([]entities.Product, 0, len(products))
	for _, product := range products {
		if product.Available {
			available = append(available, product)
		}
	}
	return available, nil
}

func (c *Catalog) GetProducts(ctx context.Context, ids []int64) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	products, err := c.repository.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (c *Catalog) SetStoreOpen(ctx context.Context, storeID int64, isOpen bool) (*entities.Store, error) {
	if !isValidID(storeID) {
		return nil, ErrInvalidStoreID
	}

	var store *entities.Store
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		store, err = c.repository.UpdateStoreOpen(ctx, storeID, isOpen)
		if err != nil {
			return fmt.Errorf("update store status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (c *Catalog) CreateProduct(ctx context.Context, storeID int64, name string, price int64, category string) (*entities.Product, error) {
	if !isValidID(storeID) {
		return nil, ErrInvalidStoreID
	}

	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	err := validateProduct(productInput{
		Name:     name,
		Price:    price,
		Category: category,
	})
	if err != nil {
		return nil, err
	}

	var product *entities.Product
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := c.repository.GetStore(ctx, storeID)
		if err != nil {
			return fmt.Errorf("get store: %w", err)
		}

		available := true
		product, err = c.repository.CreateProduct(ctx, entities.ProductModify{
			StoreID:   &storeID,
			Name:      &name,
			Price:     &price,
			Category:  &category,
			Available: &available,
		})
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (c *Catalog) ToggleProductAvailability(ctx context.Context, productID int64) (*entities.Product, error) {
	if !isValidID(productID) {
		return nil, ErrInvalidProductID
	}

	var product *entities.Product
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		product, err = c.repository.ToggleProductAvailability(ctx, productID)
		if err != nil {
			return fmt.Errorf("toggle product availability: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
