//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/handlers/kafka-consumer/order_status_changed"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_notify"
	"marketplace/internal/repository/memory"
	catalogRepo "marketplace/internal/repository/postgres/catalog"
	orderRepo "marketplace/internal/repository/postgres/order"
	userRepo "marketplace/internal/repository/postgres/user"
	"marketplace/internal/repository/seed"
	catalogService "marketplace/internal/service/catalog"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	userService "marketplace/internal/service/user"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

// InitializeMemoryApplication собирает сервис поверх хранилища в памяти (STORAGE_DRIVER=memory).
func InitializeMemoryApplication(
	ctx context.Context,
	log logger.Logger,
	fixture *seed.Fixture,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		serviceSet,

		tx.NewLockManager,
		provideMemoryUserRepository,
		provideMemoryCatalogRepository,
		memory.NewOrderRepository,

		wire.Bind(new(userService.Repository), new(*memory.UserRepository)),
		wire.Bind(new(catalogService.Repository), new(*memory.CatalogRepository)),
		wire.Bind(new(orderService.Repository), new(*memory.OrderRepository)),

		wire.Bind(new(catalogService.TxManager), new(*tx.LockManager)),
		wire.Bind(new(orderService.TxManager), new(*tx.LockManager)),
	)
	return &Application{}, nil
}

// InitializePostgresApplication собирает сервис поверх PostgreSQL (STORAGE_DRIVER=postgres).
func InitializePostgresApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		serviceSet,

		provideTxManager,
		provideQuerier,
		userRepo.New,
		catalogRepo.New,
		orderRepo.New,

		wire.Bind(new(userRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(catalogRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(catalogService.Repository), new(*catalogRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(catalogService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorker для Kafka воркера (cmd/worker-order-status-changed)
func InitializeNotificationWorker(
	log logger.Logger,
	notifier notificationService.Notifier,
	cfg *config.Config,
) *order_status_changed.Handler {
	wire.Build(
		order_notify.NewStatusHandlerFactory,
		notificationService.New,
		provideOrderStatusChangedHandler,

		wire.Bind(new(notificationService.HandlerFactory), new(*order_notify.StatusHandlerFactory)),
	)
	return nil
}
