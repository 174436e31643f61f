package order_status_changed

import (
	"time"

	"marketplace/internal/entities"
)

type statusChangedEvent struct {
	EventID          string    `json:"eventId"`
	OrderID          int64     `json:"orderId"`
	UserID           int64     `json:"userId"`
	StoreID          int64     `json:"storeId"`
	DeliveryPersonID *int64    `json:"deliveryPersonId,omitempty"`
	PreviousStatus   string    `json:"previousStatus,omitempty"`
	Status           string    `json:"status"`
	Actor            string    `json:"actor"`
	Total            int64     `json:"total"`
	OccurredAt       time.Time `json:"occurredAt"`
}

func (e statusChangedEvent) toDomain() entities.OrderEvent {
	return entities.OrderEvent{
		EventID:          e.EventID,
		OrderID:          e.OrderID,
		UserID:           e.UserID,
		StoreID:          e.StoreID,
		DeliveryPersonID: e.DeliveryPersonID,
		PreviousStatus:   entities.OrderStatusType(e.PreviousStatus),
		Status:           entities.OrderStatusType(e.Status),
		Actor:            entities.ActorType(e.Actor),
		Total:            e.Total,
		OccurredAt:       e.OccurredAt,
	}
}
