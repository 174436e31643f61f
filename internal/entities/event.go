package entities

import "time"

type ActorType string

const (
	ActorConsumer ActorType = "consumer"
	ActorStore    ActorType = "store"
	ActorCourier  ActorType = "courier"
	ActorSystem   ActorType = "system"
)

func (a ActorType) String() string {
	return string(a)
}

// OrderEvent публикуется после каждого успешного изменения заказа.
type OrderEvent struct {
	EventID          string
	OrderID          int64
	UserID           int64
	StoreID          int64
	DeliveryPersonID *int64
	PreviousStatus   OrderStatusType
	Status           OrderStatusType
	Actor            ActorType
	Total            int64
	OccurredAt       time.Time
}

type NotificationRecipient string

const (
	RecipientConsumer NotificationRecipient = "consumer"
	RecipientStore    NotificationRecipient = "store"
	RecipientCourier  NotificationRecipient = "courier"
)

type Notification struct {
	Recipient   NotificationRecipient
	RecipientID int64
	OrderID     int64
	Status      OrderStatusType
	Message     string
}
