package healthcheck_head

import "context"

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test

// Pinger зависимость, без которой инстанс не может обслуживать запросы (например *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}
