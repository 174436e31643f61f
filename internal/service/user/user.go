package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"marketplace/internal/entities"
)

// dummyHash сравнивается при неизвестном email, чтобы время ответа не выдавало наличие пользователя.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z9EoGBmlXE1TXZsgeDZ3hUoa")

type Directory struct {
	repository Repository
}

func New(repository Repository) *Directory {
	return &Directory{
		repository: repository,
	}
}

func (d *Directory) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	user, err := d.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (d *Directory) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if !isValidUserID(id) {
		return nil, ErrInvalidUserID
	}

	user, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (d *Directory) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := d.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
