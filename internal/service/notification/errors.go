package notification

import "errors"

var (
	ErrInvalidEvent    = errors.New("invalid order event")
	ErrUndefinedStatus = errors.New("undefined order status")
)
