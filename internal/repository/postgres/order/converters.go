package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	products := make([]entities.OrderProduct, len(o.Products))
	for i, p := range o.Products {
		products[i] = entities.OrderProduct{
			ProductID: p.ProductID,
			StoreID:   p.StoreID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			Quantity:  p.Quantity,
		}
	}

	return &entities.Order{
		ID:                  o.ID,
		UserID:              o.UserID,
		StoreID:             o.StoreID,
		Products:            products,
		Total:               o.Total,
		DeliveryAddress:     o.DeliveryAddress,
		PaymentMethod:       o.PaymentMethod,
		Status:              entities.OrderStatusType(o.Status),
		DeliveryPersonID:    o.DeliveryPersonID,
		CreatedAt:           o.CreatedAt.UTC(),
		UpdatedAt:           o.UpdatedAt.UTC(),
		AcceptedAt:          o.AcceptedAt,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		DeliveredAt:         o.DeliveredAt,
	}
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	products := make([]OrderProductDB, len(o.Products))
	for i, p := range o.Products {
		products[i] = OrderProductDB{
			ProductID: p.ProductID,
			StoreID:   p.StoreID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			Quantity:  p.Quantity,
		}
	}

	return &OrderDB{
		ID:                  o.ID,
		UserID:              o.UserID,
		StoreID:             o.StoreID,
		Products:            products,
		Total:               o.Total,
		DeliveryAddress:     o.DeliveryAddress,
		PaymentMethod:       o.PaymentMethod,
		Status:              o.Status.String(),
		DeliveryPersonID:    o.DeliveryPersonID,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		AcceptedAt:          o.AcceptedAt,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		DeliveredAt:         o.DeliveredAt,
	}
}
