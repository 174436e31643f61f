package integration_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
)

const statementTimeout = 2 * time.Second

// connect открывает пул один раз на пакет и накатывает миграции.
// Подключение берётся из POSTGRES_* окружения теста.
var connect = sync.OnceValues(func() (*querier.Querier, error) {
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: 4,
		MinConns: 1,
	}

	ctx := context.Background()
	pool, err := postgres.NewConnPool(ctx, logger.Nop{}, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, logger.Nop{}, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return querier.New(pool, pgxv5.DefaultCtxGetter), nil
})

// Setup заливает seedSQL в чистую базу и регистрирует очистку таблиц после теста.
// Без POSTGRES_HOST тест пропускается.
func Setup(t *testing.T, seedSQL string) *querier.Querier {
	t.Helper()

	if os.Getenv("POSTGRES_HOST") == "" {
		t.Skip("POSTGRES_HOST is not set")
	}

	db, err := connect()
	require.NoError(t, err, "connect to test database")

	exec(t, db, seedSQL)
	t.Cleanup(func() {
		exec(t, db, `TRUNCATE TABLE orders, products, users, stores RESTART IDENTITY CASCADE;`)
	})
	return db
}

func exec(t *testing.T, db *querier.Querier, sql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), statementTimeout)
	defer cancel()

	_, err := db.Exec(ctx, sql)
	require.NoError(t, err)
}

// SeedSQL минимальный набор данных: покупатель, курьер, открытый и закрытый магазины.
const SeedSQL = `
	INSERT INTO stores (id, name, type, address, is_open) VALUES
		(1, 'Restaurante Italiano', 'restaurant', 'Av. Principal 456', TRUE),
		(3, 'Supermercado Fresh', 'supermarket', 'Plaza Mayor 321', FALSE);
	INSERT INTO products (id, store_id, name, price, category, available) VALUES
		(1, 1, 'Pizza Margherita', 25000, 'food', TRUE),
		(4, 3, 'Leche', 4500, 'grocery', TRUE);
	INSERT INTO users (id, email, password_hash, role, name) VALUES
		(1, 'consumer@test.com', 'x', 'consumer', 'Juan Pérez'),
		(3, 'delivery@test.com', 'x', 'delivery', 'Carlos Repartidor');
	SELECT setval(pg_get_serial_sequence('products', 'id'), 10);
`
