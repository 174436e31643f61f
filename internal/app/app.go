package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/handlers/kafka-consumer/order_status_changed"
	"marketplace/internal/handlers/rest/courier_earnings_get"
	"marketplace/internal/handlers/rest/courier_order_action_put"
	"marketplace/internal/handlers/rest/courier_orders_get"
	"marketplace/internal/handlers/rest/delivery_order_accept_put"
	"marketplace/internal/handlers/rest/delivery_orders_get"
	"marketplace/internal/handlers/rest/login_post"
	"marketplace/internal/handlers/rest/orders_post"
	"marketplace/internal/handlers/rest/product_availability_put"
	"marketplace/internal/handlers/rest/store_order_action_put"
	"marketplace/internal/handlers/rest/store_orders_get"
	"marketplace/internal/handlers/rest/store_products_get"
	"marketplace/internal/handlers/rest/store_products_post"
	"marketplace/internal/handlers/rest/store_status_put"
	"marketplace/internal/handlers/rest/stores_get"
	"marketplace/internal/handlers/rest/user_orders_get"
	"marketplace/internal/handlers/rest/users_get"
	"marketplace/internal/handlers/tasks/order_stats"
	"marketplace/internal/handlers/tasks/pending_expiry"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/delivery_eta"
	"marketplace/internal/repository/memory"
	"marketplace/internal/repository/seed"
	catalogService "marketplace/internal/service/catalog"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	userService "marketplace/internal/service/user"
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

type Application struct {
	Orders            ServiceOrder
	Catalog           ServiceCatalog
	Users             ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	user_orders_get.Service
	store_orders_get.Service
	courier_orders_get.Service
	delivery_orders_get.Service
	delivery_order_accept_put.Service
	store_order_action_put.Service
	courier_order_action_put.Service
	courier_earnings_get.Service
}

type ServiceCatalog interface {
	stores_get.Service
	store_products_get.Service
	store_products_post.Service
	store_status_put.Service
	product_availability_put.Service
}

type ServiceUser interface {
	login_post.Service
	users_get.Service
}

// serviceSet общая часть графа: сервисы и фоновые задачи не зависят от выбранного хранилища.
var serviceSet = wire.NewSet(
	provideOrderConfig,
	provideUserService,
	provideCatalogService,
	provideOrderService,
	delivery_eta.New,

	provideOrderStatsTask,
	providePendingExpiryTask,
	provideTaskList,
	provideBackgroundWorkers,

	wire.Struct(new(Application), "*"),

	wire.Bind(new(ServiceOrder), new(*orderService.Service)),
	wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
	wire.Bind(new(ServiceUser), new(*userService.Directory)),

	wire.Bind(new(orderService.CatalogService), new(*catalogService.Catalog)),
	wire.Bind(new(orderService.UserService), new(*userService.Directory)),
	wire.Bind(new(orderService.DeliveryTimeFactory), new(*delivery_eta.DeliveryTimeFactory)),

	wire.Bind(new(order_stats.Service), new(*orderService.Service)),
	wire.Bind(new(pending_expiry.Service), new(*orderService.Service)),
)

func provideTxManager(pool *pgxpool.Pool, cfg *config.Config) *tx.Manager {
	return tx.New(pool, tx.WithMaxAttempts(cfg.Database.TxMaxAttempts))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideMemoryUserRepository(fixture *seed.Fixture) *memory.UserRepository {
	return memory.NewUserRepository(fixture.Users)
}

func provideMemoryCatalogRepository(fixture *seed.Fixture) *memory.CatalogRepository {
	return memory.NewCatalogRepository(fixture.Stores, fixture.Products)
}

func provideOrderConfig(cfg *config.Config) orderService.Config {
	return orderService.Config{
		CommissionPercent: cfg.Orders.CourierCommissionPercent,
	}
}

func provideUserService(repository userService.Repository) *userService.Directory {
	return userService.New(repository)
}

func provideCatalogService(
	repository catalogService.Repository,
	txManager catalogService.TxManager,
) *catalogService.Catalog {
	return catalogService.New(repository, txManager)
}

func provideOrderService(
	log logger.Logger,
	repository orderService.Repository,
	catalog orderService.CatalogService,
	users orderService.UserService,
	timeFactory orderService.DeliveryTimeFactory,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
	cfg orderService.Config,
) *orderService.Service {
	return orderService.New(
		log,
		repository,
		catalog,
		users,
		timeFactory,
		publisher,
		txManager,
		cfg,
	)
}

func provideOrderStatsTask(service order_stats.Service, cfg *config.Config) *order_stats.OrderStats {
	return order_stats.New(service, cfg.Tasks.OrderStatsInterval)
}

func providePendingExpiryTask(log logger.Logger, service pending_expiry.Service, cfg *config.Config) *pending_expiry.PendingExpiry {
	return pending_expiry.New(log, service, cfg.Tasks.PendingExpiryInterval, cfg.Tasks.PendingTTL)
}

// provideTaskList ORDER_PENDING_TTL=0 выключает автоотмену.
func provideTaskList(
	cfg *config.Config,
	orderStatsTask *order_stats.OrderStats,
	pendingExpiryTask *pending_expiry.PendingExpiry,
) []background.Task {
	tasks := []background.Task{orderStatsTask}
	if cfg.Tasks.PendingTTL > 0 {
		tasks = append(tasks, pendingExpiryTask)
	}
	return tasks
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideOrderStatusChangedHandler(
	log logger.Logger,
	service *notificationService.Service,
	cfg *config.Config,
) *order_status_changed.Handler {
	return order_status_changed.New(log, service, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)
}
