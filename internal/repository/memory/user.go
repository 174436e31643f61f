package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"marketplace/internal/entities"
	"marketplace/internal/service/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[int64]entities.User
	byEmail map[string]int64
}

func NewUserRepository(users []entities.User) *UserRepository {
	r := &UserRepository{
		byID:    make(map[int64]entities.User, len(users)),
		byEmail: make(map[string]int64, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = cloneUser(u)
		r.byEmail[strings.ToLower(u.Email)] = u.ID
	}
	return r
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u := cloneUser(r.byID[id])
	return &u, nil
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entities.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
