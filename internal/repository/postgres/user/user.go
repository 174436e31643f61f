package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/user"
)

const selectColumns = `id, email, password_hash, role, name, address, store_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + selectColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + selectColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.getOne(ctx, query, email)
}

func (r *Repository) List(ctx context.Context) ([]entities.User, error) {
	query := `SELECT ` + selectColumns + ` FROM users ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	var usersDB []UserDB
	for rows.Next() {
		var u UserDB
		if err := scan(rows, &u); err != nil {
			return nil, fmt.Errorf("unexpected user repository scan error: %w", err)
		}
		usersDB = append(usersDB, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository rows error: %w", err)
	}

	return ToDomainList(usersDB), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var userModel UserDB
	err := scan(r.querier.QueryRow(ctx, query, arg), &userModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}
	return ToDomain(&userModel), nil
}

func scan(row pgx.Row, u *UserDB) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.Address,
		&u.StoreID,
	)
}
