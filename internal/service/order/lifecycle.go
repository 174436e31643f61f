package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

type transitionRequest struct {
	orderID int64
	actor   entities.ActorType
	to      entities.OrderStatusType
	// owns скрывает чужие заказы: для них возвращается ErrOrderNotFound.
	owns  func(order *entities.Order) bool
	apply func(ctx context.Context, order *entities.Order, t *entities.OrderTransition) error
}

// AcceptByCourier закрепляет ожидающий заказ за курьером. Из нескольких одновременных
// попыток успешна ровно одна, остальные получают ErrInvalidTransition.
func (s *Service) AcceptByCourier(ctx context.Context, orderID, courierID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorCourier,
		to:      entities.OrderAccepted,
		apply: func(ctx context.Context, order *entities.Order, t *entities.OrderTransition) error {
			if err := s.ensureCourier(ctx, courierID); err != nil {
				return err
			}
			if order.DeliveryPersonID != nil {
				return fmt.Errorf("%w: courier already assigned", ErrInvalidTransition)
			}

			eta, err := s.estimate(ctx, order.StoreID, t.At)
			if err != nil {
				return err
			}
			t.DeliveryPersonID = &courierID
			t.AcceptedAt = &t.At
			t.EstimatedDeliveryAt = &eta
			return nil
		},
	})
}

func (s *Service) AcceptByStore(ctx context.Context, storeID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorStore,
		to:      entities.OrderAccepted,
		owns:    ownedByStore(storeID),
		apply: func(ctx context.Context, order *entities.Order, t *entities.OrderTransition) error {
			eta, err := s.estimate(ctx, order.StoreID, t.At)
			if err != nil {
				return err
			}
			t.AcceptedAt = &t.At
			t.EstimatedDeliveryAt = &eta
			return nil
		},
	})
}

func (s *Service) Reject(ctx context.Context, storeID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorStore,
		to:      entities.OrderCancelled,
		owns:    ownedByStore(storeID),
	})
}

func (s *Service) StartPreparing(ctx context.Context, storeID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorStore,
		to:      entities.OrderPreparing,
		owns:    ownedByStore(storeID),
	})
}

func (s *Service) MarkReady(ctx context.Context, storeID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorStore,
		to:      entities.OrderReady,
		owns:    ownedByStore(storeID),
	})
}

// CompleteByStore закрывает заказ, который магазин доставляет сам (курьер не назначен).
func (s *Service) CompleteByStore(ctx context.Context, storeID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorStore,
		to:      entities.OrderDelivered,
		owns:    ownedByStore(storeID),
		apply: func(_ context.Context, order *entities.Order, t *entities.OrderTransition) error {
			if order.DeliveryPersonID != nil {
				return fmt.Errorf("%w: order is delivered by courier", ErrInvalidTransition)
			}
			t.DeliveredAt = &t.At
			return nil
		},
	})
}

func (s *Service) MarkPickedUp(ctx context.Context, courierID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorCourier,
		to:      entities.OrderPickedUp,
		owns:    ownedByCourier(courierID),
	})
}

func (s *Service) MarkDelivered(ctx context.Context, courierID, orderID int64) (*entities.Order, error) {
	return s.transition(ctx, transitionRequest{
		orderID: orderID,
		actor:   entities.ActorCourier,
		to:      entities.OrderDelivered,
		owns:    ownedByCourier(courierID),
		apply: func(_ context.Context, _ *entities.Order, t *entities.OrderTransition) error {
			t.DeliveredAt = &t.At
			return nil
		},
	})
}

// ExpireStalePending отменяет заказы, которые никто не принял за olderThan.
func (s *Service) ExpireStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	before := time.Now().UTC().Add(-olderThan)
	stale, err := s.repository.ListPendingCreatedBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("list stale pending orders: %w", err)
	}

	var expired int64
	for _, o := range stale {
		_, err := s.transition(ctx, transitionRequest{
			orderID: o.ID,
			actor:   entities.ActorSystem,
			to:      entities.OrderCancelled,
		})
		if err != nil {
			// заказ успели принять, пропускаем
			if errors.Is(err, ErrInvalidTransition) {
				continue
			}
			return expired, fmt.Errorf("expire order %d: %w", o.ID, err)
		}
		expired++
	}
	return expired, nil
}

func (s *Service) transition(ctx context.Context, req transitionRequest) (*entities.Order, error) {
	if !isValidID(req.orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		previous entities.OrderStatusType
		updated  *entities.Order
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, req.orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if req.owns != nil && !req.owns(order) {
			return ErrOrderNotFound
		}

		err = checkTransition(order.Status, req.to, req.actor)
		if err != nil {
			return err
		}

		t := entities.OrderTransition{
			OrderID: order.ID,
			From:    order.Status,
			To:      req.to,
			At:      time.Now().UTC(),
		}
		if req.apply != nil {
			err = req.apply(ctx, order, &t)
			if err != nil {
				return err
			}
		}

		updated, err = s.repository.Transition(ctx, t)
		if err != nil {
			if errors.Is(err, ErrStaleStatus) {
				return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
			}
			return fmt.Errorf("transition order: %w", err)
		}

		previous = order.Status
		// Публикуем, пока заказ заблокирован, чтобы события одного заказа шли в порядке переходов.
		s.publish(ctx, updated, previous, req.actor)
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrderTransitionsTotal.WithLabelValues(previous.String(), updated.Status.String(), req.actor.String()).Inc()
	return updated, nil
}

func (s *Service) estimate(ctx context.Context, storeID int64, at time.Time) (time.Time, error) {
	store, err := s.catalogService.GetStore(ctx, storeID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get store for delivery estimate: %w", err)
	}
	return s.timeFactory.EstimateDelivery(store.Type, at), nil
}

func ownedByStore(storeID int64) func(order *entities.Order) bool {
	return func(order *entities.Order) bool {
		return order.StoreID == storeID
	}
}

func ownedByCourier(courierID int64) func(order *entities.Order) bool {
	return func(order *entities.Order) bool {
		return order.DeliveryPersonID != nil && *order.DeliveryPersonID == courierID
	}
}
