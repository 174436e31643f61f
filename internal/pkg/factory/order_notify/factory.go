package order_notify

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

type StatusHandlerFactory struct {
	notifier notification.Notifier
}

func NewStatusHandlerFactory(notifier notification.Notifier) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		notifier: notifier,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (notification.ExecuteFn, error) {
	switch status {
	case entities.OrderPending:
		return f.createdHandler, nil
	case entities.OrderAccepted:
		return f.acceptedHandler, nil
	case entities.OrderPreparing, entities.OrderReady:
		return f.kitchenHandler, nil
	case entities.OrderPickedUp:
		return f.pickedUpHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) createdHandler(ctx context.Context, event entities.OrderEvent) error {
	return f.send(ctx, event,
		toStore(event, fmt.Sprintf("new order #%d for %d", event.OrderID, event.Total)),
	)
}

func (f *StatusHandlerFactory) acceptedHandler(ctx context.Context, event entities.OrderEvent) error {
	message := fmt.Sprintf("order #%d accepted by the store", event.OrderID)
	if event.Actor == entities.ActorCourier {
		message = fmt.Sprintf("order #%d accepted by a courier", event.OrderID)
	}
	return f.send(ctx, event,
		toConsumer(event, message),
		toStore(event, message),
	)
}

func (f *StatusHandlerFactory) kitchenHandler(ctx context.Context, event entities.OrderEvent) error {
	return f.send(ctx, event,
		toConsumer(event, fmt.Sprintf("order #%d is %s", event.OrderID, event.Status)),
	)
}

func (f *StatusHandlerFactory) pickedUpHandler(ctx context.Context, event entities.OrderEvent) error {
	return f.send(ctx, event,
		toConsumer(event, fmt.Sprintf("order #%d is on its way", event.OrderID)),
	)
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, event entities.OrderEvent) error {
	message := fmt.Sprintf("order #%d delivered", event.OrderID)
	return f.send(ctx, event,
		toConsumer(event, message),
		toStore(event, message),
	)
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, event entities.OrderEvent) error {
	return f.send(ctx, event,
		toConsumer(event, fmt.Sprintf("order #%d was cancelled", event.OrderID)),
	)
}

// send пытается доставить все уведомления и возвращает объединенную ошибку.
func (f *StatusHandlerFactory) send(ctx context.Context, event entities.OrderEvent, notifications ...entities.Notification) error {
	var errs []error
	for _, n := range notifications {
		err := f.notifier.Notify(ctx, n)
		if err != nil {
			errs = append(errs, fmt.Errorf("notify %s %d about order %d: %w", n.Recipient, n.RecipientID, event.OrderID, err))
		}
	}
	return errors.Join(errs...)
}

func toConsumer(event entities.OrderEvent, message string) entities.Notification {
	return entities.Notification{
		Recipient:   entities.RecipientConsumer,
		RecipientID: event.UserID,
		OrderID:     event.OrderID,
		Status:      event.Status,
		Message:     message,
	}
}

func toStore(event entities.OrderEvent, message string) entities.Notification {
	return entities.Notification{
		Recipient:   entities.RecipientStore,
		RecipientID: event.StoreID,
		OrderID:     event.OrderID,
		Status:      event.Status,
		Message:     message,
	}
}
