package catalog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStoreID        = errors.New("invalid store id")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidPrice          = errors.New("price must be between 1 and 1000000000")

	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")
)
