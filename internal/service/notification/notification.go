package notification

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	factory HandlerFactory
}

func New(factory HandlerFactory) *Service {
	return &Service{
		factory: factory,
	}
}

// HandleOrderEvent рассылает уведомления участникам заказа по новому статусу.
func (s *Service) HandleOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	if event.OrderID <= 0 || !event.Status.IsValid() {
		return fmt.Errorf("%w: order %d status %q", ErrInvalidEvent, event.OrderID, event.Status)
	}

	handler, err := s.factory.GetHandler(event.Status)
	if err != nil {
		return fmt.Errorf("get handler: %w", err)
	}

	err = handler(ctx, event)
	if err != nil {
		return fmt.Errorf("handle %s event for order %d: %w", event.Status, event.OrderID, err)
	}
	return nil
}
