package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")

	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials одинакова для неизвестного email и неверного пароля.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
