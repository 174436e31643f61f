package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("quantity is out of range")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidStoreID        = errors.New("invalid store id")
	ErrInvalidConsumer       = errors.New("user is not a consumer")
	ErrInvalidCourier        = errors.New("user is not a delivery courier")
	ErrStoreClosed           = errors.New("store is closed")
	// ErrNoOrderableItems заказ без единой доступной позиции отклоняется, а не создаётся с нулевой суммой.
	ErrNoOrderableItems      = errors.New("no orderable products in order")

	ErrOrderNotFound = errors.New("order not found")
	ErrStoreNotFound = errors.New("store not found")

	ErrInvalidTransition = errors.New("order is no longer available for this action")
	// ErrStaleStatus возвращает репозиторий, когда статус успел измениться.
	ErrStaleStatus = errors.New("order status changed concurrently")
)
