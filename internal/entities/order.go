package entities

import "time"

type Order struct {
	ID                  int64
	UserID              int64
	StoreID             int64
	Products            []OrderProduct
	Total               int64
	DeliveryAddress     string
	PaymentMethod       string
	Status              OrderStatusType
	DeliveryPersonID    *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	AcceptedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
}

// OrderProduct снимок товара на момент оформления заказа.
type OrderProduct struct {
	ProductID int64
	StoreID   int64
	Name      string
	Price     int64
	Category  string
	Quantity  int64
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAccepted  OrderStatusType = "accepted"
	OrderPreparing OrderStatusType = "preparing"
	OrderReady     OrderStatusType = "ready"
	OrderPickedUp  OrderStatusType = "picked-up"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderPreparing, OrderReady,
		OrderPickedUp, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderStatuses перечисляет статусы в порядке жизненного цикла.
var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderAccepted,
	OrderPreparing,
	OrderReady,
	OrderPickedUp,
	OrderDelivered,
	OrderCancelled,
}

type OrderLineItem struct {
	ProductID int64
	Quantity  int64 `validate:"gt=0,lte=10000"`
}

// OrderDraft входные данные для оформления заказа.
type OrderDraft struct {
	UserID          int64           `validate:"required,gt=0"`
	StoreID         int64           `validate:"required,gt=0"`
	Items           []OrderLineItem `validate:"required,min=1,dive"`
	DeliveryAddress string          `validate:"required,notblank"`
	PaymentMethod   string          `validate:"required,notblank"`
}

// OrderTransition описывает смену статуса, которую репозиторий применяет атомарно
// только если текущий статус заказа равен From.
type OrderTransition struct {
	OrderID             int64
	From                OrderStatusType
	To                  OrderStatusType
	At                  time.Time
	DeliveryPersonID    *int64
	AcceptedAt          *time.Time
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
}

type OrderStatusCount struct {
	Status OrderStatusType
	Count  int64
}

type CourierEarnings struct {
	CourierID   int64
	TodayAmount int64
	TotalAmount int64
	TodayCount  int64
	TotalCount  int64
}
