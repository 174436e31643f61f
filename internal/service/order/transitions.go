package order

import (
	"fmt"

	"marketplace/internal/entities"
)

type transitionKey struct {
	from  entities.OrderStatusType
	to    entities.OrderStatusType
	actor entities.ActorType
}

// allowedTransitions единственный источник правды о жизненном цикле заказа.
var allowedTransitions = map[transitionKey]struct{}{
	{entities.OrderPending, entities.OrderAccepted, entities.ActorCourier}: {},
	{entities.OrderPending, entities.OrderAccepted, entities.ActorStore}:   {},
	{entities.OrderPending, entities.OrderCancelled, entities.ActorStore}:  {},
	{entities.OrderPending, entities.OrderCancelled, entities.ActorSystem}: {},

	{entities.OrderAccepted, entities.OrderPreparing, entities.ActorStore}: {},
	{entities.OrderAccepted, entities.OrderReady, entities.ActorStore}:     {},
	{entities.OrderPreparing, entities.OrderReady, entities.ActorStore}:    {},

	{entities.OrderAccepted, entities.OrderPickedUp, entities.ActorCourier}: {},
	{entities.OrderReady, entities.OrderPickedUp, entities.ActorCourier}:    {},
	{entities.OrderPickedUp, entities.OrderDelivered, entities.ActorCourier}: {},

	{entities.OrderReady, entities.OrderDelivered, entities.ActorStore}: {},
}

func CanTransition(from, to entities.OrderStatusType, actor entities.ActorType) bool {
	_, ok := allowedTransitions[transitionKey{from: from, to: to, actor: actor}]
	return ok
}

func checkTransition(from, to entities.OrderStatusType, actor entities.ActorType) error {
	if from.IsTerminal() || !CanTransition(from, to, actor) {
		return fmt.Errorf("%w: %s -> %s by %s", ErrInvalidTransition, from, to, actor)
	}
	return nil
}
