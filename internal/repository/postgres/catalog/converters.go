package catalog

import "marketplace/internal/entities"

func StoreToDomain(s *StoreDB) *entities.Store {
	if s == nil {
		return nil
	}

	return &entities.Store{
		ID:      s.ID,
		Name:    s.Name,
		Type:    entities.StoreType(s.Type),
		Address: s.Address,
		IsOpen:  s.IsOpen,
	}
}

func ProductToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:        p.ID,
		StoreID:   p.StoreID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Available: p.Available,
	}
}

func FromDomainModify(productModify *entities.ProductModify) *ProductModifyDB {
	if productModify == nil {
		return nil
	}

	return &ProductModifyDB{
		StoreID:   productModify.StoreID,
		Name:      productModify.Name,
		Price:     productModify.Price,
		Category:  productModify.Category,
		Available: productModify.Available,
	}
}
