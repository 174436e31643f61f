package converters

import (
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func User(u entities.User) dto.User {
	res := dto.User{
		Id:      u.ID,
		Email:   u.Email,
		Role:    dto.UserRole(u.Role),
		Name:    u.Name,
		StoreId: u.StoreID,
	}
	if u.Address != "" {
		address := u.Address
		res.Address = &address
	}
	return res
}

func Users(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, User(u))
	}
	return res
}

func Store(s entities.Store) dto.Store {
	return dto.Store{
		Id:      s.ID,
		Name:    s.Name,
		Type:    dto.StoreType(s.Type),
		Address: s.Address,
		IsOpen:  s.IsOpen,
	}
}

func Stores(stores []entities.Store) []dto.Store {
	res := make([]dto.Store, 0, len(stores))
	for _, s := range stores {
		res = append(res, Store(s))
	}
	return res
}

func Product(p entities.Product) dto.Product {
	return dto.Product{
		Id:        p.ID,
		StoreId:   p.StoreID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Available: p.Available,
	}
}

func Products(products []entities.Product) []dto.Product {
	res := make([]dto.Product, 0, len(products))
	for _, p := range products {
		res = append(res, Product(p))
	}
	return res
}

func Order(o entities.Order) dto.Order {
	products := make([]dto.OrderProduct, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, dto.OrderProduct{
			Id:       p.ProductID,
			StoreId:  p.StoreID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Quantity: p.Quantity,
		})
	}

	return dto.Order{
		Id:                  o.ID,
		UserId:              o.UserID,
		StoreId:             o.StoreID,
		Products:            products,
		Total:               o.Total,
		DeliveryAddress:     o.DeliveryAddress,
		PaymentMethod:       o.PaymentMethod,
		Status:              dto.OrderStatus(o.Status),
		DeliveryPersonId:    o.DeliveryPersonID,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		AcceptedAt:          o.AcceptedAt,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		DeliveredAt:         o.DeliveredAt,
	}
}

func Orders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, Order(o))
	}
	return res
}

func OrderItems(items []dto.OrderItem) []entities.OrderLineItem {
	res := make([]entities.OrderLineItem, 0, len(items))
	for _, item := range items {
		res = append(res, entities.OrderLineItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}
	return res
}

func CourierEarnings(e entities.CourierEarnings) dto.CourierEarnings {
	return dto.CourierEarnings{
		DeliveryPersonId: e.CourierID,
		TodayAmount:      e.TodayAmount,
		TotalAmount:      e.TotalAmount,
		TodayCount:       e.TodayCount,
		TotalCount:       e.TotalCount,
	}
}
