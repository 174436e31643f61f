package memory

import (
	"context"
	"sort"
	"sync"

	"marketplace/internal/entities"
	"marketplace/internal/service/catalog"
)

type CatalogRepository struct {
	mu            sync.RWMutex
	stores        map[int64]entities.Store
	products      map[int64]entities.Product
	nextProductID int64
}

func NewCatalogRepository(stores []entities.Store, products []entities.Product) *CatalogRepository {
	r := &CatalogRepository{
		stores:   make(map[int64]entities.Store, len(stores)),
		products: make(map[int64]entities.Product, len(products)),
	}
	for _, s := range stores {
		r.stores[s.ID] = s
	}
	for _, p := range products {
		r.products[p.ID] = p
		if p.ID > r.nextProductID {
			r.nextProductID = p.ID
		}
	}
	return r
}

func (r *CatalogRepository) ListStores(_ context.Context) ([]entities.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stores := make([]entities.Store, 0, len(r.stores))
	for _, s := range r.stores {
		stores = append(stores, s)
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })
	return stores, nil
}

func (r *CatalogRepository) GetStore(_ context.Context, id int64) (*entities.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stores[id]
	if !ok {
		return nil, catalog.ErrStoreNotFound
	}
	return &s, nil
}

func (r *CatalogRepository) UpdateStoreOpen(_ context.Context, id int64, isOpen bool) (*entities.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[id]
	if !ok {
		return nil, catalog.ErrStoreNotFound
	}
	s.IsOpen = isOpen
	r.stores[id] = s
	return &s, nil
}

func (r *CatalogRepository) ListProductsByStore(_ context.Context, storeID int64) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entities.Product, 0)
	for _, p := range r.products {
		if p.StoreID == storeID {
			products = append(products, p)
		}
	}
	sortProducts(products)
	return products, nil
}

// GetProductsByIDs пропускает неизвестные id без ошибки.
func (r *CatalogRepository) GetProductsByIDs(_ context.Context, ids []int64) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *CatalogRepository) CreateProduct(_ context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var p entities.Product
	if productModify.StoreID != nil {
		p.StoreID = *productModify.StoreID
	}
	if _, ok := r.stores[p.StoreID]; !ok {
		return nil, catalog.ErrStoreNotFound
	}
	if productModify.Name != nil {
		p.Name = *productModify.Name
	}
	if productModify.Price != nil {
		p.Price = *productModify.Price
	}
	if productModify.Category != nil {
		p.Category = *productModify.Category
	}
	if productModify.Available != nil {
		p.Available = *productModify.Available
	}

	r.nextProductID++
	p.ID = r.nextProductID
	r.products[p.ID] = p
	return &p, nil
}

func (r *CatalogRepository) ToggleProductAvailability(_ context.Context, id int64) (*entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	p.Available = !p.Available
	r.products[id] = p
	return &p, nil
}

func sortProducts(products []entities.Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
}
