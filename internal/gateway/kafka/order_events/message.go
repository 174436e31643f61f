package order_events

import (
	"time"

	"marketplace/internal/entities"
)

// statusChangedMessage схема сообщения в топике order.status.changed.
type statusChangedMessage struct {
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

func toMessage(event entities.OrderEvent) statusChangedMessage {
	return statusChangedMessage{
		EventID:          event.EventID,
		OrderID:          event.OrderID,
		UserID:           event.UserID,
		StoreID:          event.StoreID,
		DeliveryPersonID: event.DeliveryPersonID,
		PreviousStatus:   event.PreviousStatus.String(),
		Status:           event.Status.String(),
		Actor:            event.Actor.String(),
		Total:            event.Total,
		OccurredAt:       event.OccurredAt.UTC(),
	}
}
