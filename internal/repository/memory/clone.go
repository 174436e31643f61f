package memory

import "marketplace/internal/entities"

func cloneOrder(o entities.Order) entities.Order {
	if o.Products != nil {
		products := make([]entities.OrderProduct, len(o.Products))
		copy(products, o.Products)
		o.Products = products
	}
	o.DeliveryPersonID = clonePtr(o.DeliveryPersonID)
	o.AcceptedAt = clonePtr(o.AcceptedAt)
	o.EstimatedDeliveryAt = clonePtr(o.EstimatedDeliveryAt)
	o.DeliveredAt = clonePtr(o.DeliveredAt)
	return o
}

func cloneUser(u entities.User) entities.User {
	u.StoreID = clonePtr(u.StoreID)
	return u
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
