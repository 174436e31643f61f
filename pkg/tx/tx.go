package tx

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, при которых транзакцию имеет смысл повторить целиком.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const defaultMaxAttempts = 3

// Manager выполняет функцию в транзакции PostgreSQL. Вложенные вызовы Do
// переиспользуют внешнюю транзакцию из контекста.
type Manager struct {
	internal    *manager.Manager
	settings    pgxv5.Settings
	maxAttempts int
}

type Option func(*Manager)

// WithIsoLevel задаёт уровень изоляции. По умолчанию ReadCommitted: переходы статусов
// заказа защищены условием на текущий статус в UPDATE.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.settings = pgxv5.MustSettings(
			settings.Must(),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
		)
	}
}

// WithMaxAttempts ограничивает число попыток при конфликте сериализации или дедлоке.
func WithMaxAttempts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal:    manager.Must(pgxv5.NewDefaultFactory(db)),
		maxAttempts: defaultMaxAttempts,
	}
	WithIsoLevel(pgx.ReadCommitted)(m)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for range m.maxAttempts {
		err = m.internal.DoWithSettings(ctx, m.settings, fn)
		if !IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

// IsRetryable сообщает, откатила ли база транзакцию из-за конкурентного доступа.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
