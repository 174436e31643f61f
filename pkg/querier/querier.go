package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier выполняет запросы в транзакции из контекста, если она есть, иначе
// напрямую через пул. Репозитории не знают, в транзакции они или нет.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	defer observe(opExec, time.Now())

	tag, err := q.executor(ctx).Exec(ctx, sql, args...)
	countError(opExec, err)
	return tag, err
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	defer observe(opQuery, time.Now())

	rows, err := q.executor(ctx).Query(ctx, sql, args...)
	countError(opQuery, err)
	return rows, err
}

// QueryRow ошибка приходит только в Scan, поэтому здесь меряется лишь время отправки.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	defer observe(opQueryRow, time.Now())

	return q.executor(ctx).QueryRow(ctx, sql, args...)
}

func (q *Querier) SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults {
	defer observe(opBatch, time.Now())

	return q.executor(ctx).SendBatch(ctx, batch)
}
