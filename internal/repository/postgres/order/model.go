package order

import "time"

type OrderDB struct {
	ID                  int64
	UserID              int64
	StoreID             int64
	Products            []OrderProductDB
	Total               int64
	DeliveryAddress     string
	PaymentMethod       string
	Status              string
	DeliveryPersonID    *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	AcceptedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
}

// OrderProductDB хранится в колонке products (jsonb).
type OrderProductDB struct {
	ProductID int64  `json:"productId"`
	StoreID   int64  `json:"storeId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Category  string `json:"category"`
	Quantity  int64  `json:"quantity"`
}
