package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New возвращает валидатор с зарегистрированным тегом notblank.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// FailedFields возвращает имена полей, не прошедших проверку, вместе с тегом правила.
// Пустой результат означает что err не ошибка валидации.
func FailedFields(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	res := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		res[fe.StructField()] = fe.Tag()
	}
	return res
}
