package order

import (
	"marketplace/internal/entities"
	"marketplace/internal/pkg/validation"
)

var validate = validation.New()

func validateDraft(draft entities.OrderDraft) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	failed := validation.FailedFields(err)
	if _, ok := failed["Quantity"]; ok && len(failed) == 1 {
		return ErrInvalidQuantity
	}
	return ErrMissingRequiredFields
}

func isValidID(id int64) bool {
	return id > 0
}

// commission округляет долю курьера до ближайшей единицы.
func commission(total, percent int64) int64 {
	return total/100*percent + (total%100*percent+50)/100
}
