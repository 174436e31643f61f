package seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/repository/seed"
)

type Querier interface {
	SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults
}

// Seed заливает фикстуру одним батчем. Уже существующие строки не трогаются,
// после вставки последовательности id сдвигаются за максимальный id.
func Seed(ctx context.Context, q Querier, fixture *seed.Fixture) error {
	batch := &pgx.Batch{}

	for _, s := range fixture.Stores {
		batch.Queue(`INSERT INTO stores (id, name, type, address, is_open)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			s.ID, s.Name, s.Type.String(), s.Address, s.IsOpen)
	}
	for _, p := range fixture.Products {
		batch.Queue(`INSERT INTO products (id, store_id, name, price, category, available)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.StoreID, p.Name, p.Price, p.Category, p.Available)
	}
	for _, u := range fixture.Users {
		batch.Queue(`INSERT INTO users (id, email, password_hash, role, name, address, store_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Email, u.PasswordHash, u.Role.String(), u.Name, u.Address, u.StoreID)
	}
	for _, table := range []string{"stores", "products", "users"} {
		batch.Queue(fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
			table,
		))
	}

	results := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("seed statement %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close seed batch: %w", err)
	}
	return nil
}
