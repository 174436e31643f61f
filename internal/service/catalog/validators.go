package catalog

import (
	"marketplace/internal/pkg/validation"
)

var validate = validation.New()

type productInput struct {
	Name     string `validate:"required,notblank,max=200"`
	Price    int64  `validate:"required,gt=0,lte=1000000000"`
	Category string `validate:"required,notblank,max=100"`
}

func validateProduct(input productInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	failed := validation.FailedFields(err)
	if tag, ok := failed["Price"]; ok && (tag == "gt" || tag == "lte") && len(failed) == 1 {
		return ErrInvalidPrice
	}
	return ErrMissingRequiredFields
}

func isValidID(id int64) bool {
	return id > 0
}
