package tx

import (
	"context"
	"sync"
)

type lockKey struct{}

// LockManager сериализует транзакции хранилища в памяти. Вложенные вызовы Do
// с тем же контекстом выполняются под уже захваченной блокировкой.
type LockManager struct {
	mu sync.Mutex
}

func NewLockManager() *LockManager {
	return &LockManager{}
}

func (m *LockManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if held, _ := ctx.Value(lockKey{}).(*LockManager); held == m {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, lockKey{}, m))
}
