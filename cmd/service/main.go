package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/gateway/kafka/order_events"
	"marketplace/internal/handlers/rest/courier_earnings_get"
	"marketplace/internal/handlers/rest/courier_order_action_put"
	"marketplace/internal/handlers/rest/courier_orders_get"
	"marketplace/internal/handlers/rest/delivery_order_accept_put"
	"marketplace/internal/handlers/rest/delivery_orders_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/login_post"
	"marketplace/internal/handlers/rest/orders_post"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/product_availability_put"
	"marketplace/internal/handlers/rest/store_order_action_put"
	"marketplace/internal/handlers/rest/store_orders_get"
	"marketplace/internal/handlers/rest/store_products_get"
	"marketplace/internal/handlers/rest/store_products_post"
	"marketplace/internal/handlers/rest/store_status_put"
	"marketplace/internal/handlers/rest/stores_get"
	"marketplace/internal/handlers/rest/user_orders_get"
	"marketplace/internal/handlers/rest/users_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/grpcserver"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/request_id"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	postgresSeeder "marketplace/internal/repository/postgres/seeder"
	"marketplace/internal/repository/seed"
	orderService "marketplace/internal/service/order"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/querier"
	"marketplace/pkg/token_bucket"
)

const rateLimiterIdleTTL = 10 * time.Minute

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel, "marketplace")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application",
		logger.NewField("storage", cfg.Storage.Driver),
		logger.NewField("kafka", cfg.Kafka.Enabled),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	publisher, closePublisher, err := initPublisher(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("kafka publisher: %w", err)
	}
	defer closePublisher()

	fixture, err := seed.Load(cfg.Storage.SeedFile)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	var (
		businessApp *application.Application
		readiness   []healthcheck_head.Pinger
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		readiness = append(readiness, pool)

		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := postgresSeeder.Seed(ctx, querier.New(pool, pgxv5.DefaultCtxGetter), fixture); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}

		businessApp, err = application.InitializePostgresApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}
	default:
		businessApp, err = application.InitializeMemoryApplication(ctx, log, fixture, publisher, cfg)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, readiness, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	// grpc health, для k8s grpc probe
	var healthServer *grpcserver.HealthServer
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpcserver.NewHealthServer(log, cfg.Server.GRPCHealthPort)

		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Serve(ctx); err != nil {
				healthServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.SetServing(false)
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	if healthServer != nil {
		healthServer.Shutdown(shutdownCtx)
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// фоновые задачи остановились по ctx, дожидаемся их до закрытия пула
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

// initPublisher без KAFKA_ENABLED события изменения заказов никуда не уходят.
func initPublisher(ctx context.Context, log logger.Logger, cfg *config.Config) (orderService.EventPublisher, func(), error) {
	if !cfg.Kafka.Enabled {
		log.Warn("kafka disabled, order events are not published")
		return order_events.Noop{}, func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := producer.Close(); err != nil && !errors.Is(err, sarama.ErrClosedClient) {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}
	return order_events.New(producer, cfg.Kafka.Topic), closeFn, nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	readiness []healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	limiter := token_bucket.NewKeyed(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterIdleTTL)

	router.Use(request_id.Middleware)
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(log, cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, readiness...)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/login", login_post.New(log, app.Users)).Methods(http.MethodPost)
	router.Handle("/users", users_get.New(log, app.Users)).Methods(http.MethodGet)
	router.Handle("/users/{userId}/orders", user_orders_get.New(log, app.Orders)).Methods(http.MethodGet)

	router.Handle("/stores", stores_get.New(log, app.Catalog)).Methods(http.MethodGet)
	router.Handle("/stores/{storeId}/products", store_products_get.New(log, app.Catalog)).Methods(http.MethodGet)
	router.Handle("/stores/{storeId}/products", store_products_post.New(log, app.Catalog)).Methods(http.MethodPost)
	router.Handle("/stores/{storeId}/status", store_status_put.New(log, app.Catalog)).Methods(http.MethodPut)
	router.Handle("/stores/{storeId}/orders", store_orders_get.New(log, app.Orders)).Methods(http.MethodGet)
	router.Handle("/stores/{storeId}/orders/{orderId}/{action:"+store_order_action_put.ActionsPattern+"}",
		store_order_action_put.New(log, app.Orders)).Methods(http.MethodPut)
	router.Handle("/products/{productId}/availability", product_availability_put.New(log, app.Catalog)).Methods(http.MethodPut)

	router.Handle("/orders", orders_post.New(log, app.Orders)).Methods(http.MethodPost)

	router.Handle("/delivery/orders", delivery_orders_get.New(log, app.Orders)).Methods(http.MethodGet)
	router.Handle("/delivery/orders/{orderId}/accept", delivery_order_accept_put.New(log, app.Orders)).Methods(http.MethodPut)
	router.Handle("/delivery/{deliveryPersonId}/orders", courier_orders_get.New(log, app.Orders)).Methods(http.MethodGet)
	router.Handle("/delivery/{deliveryPersonId}/orders/{orderId}/{action:"+courier_order_action_put.ActionsPattern+"}",
		courier_order_action_put.New(log, app.Orders)).Methods(http.MethodPut)
	router.Handle("/delivery/{deliveryPersonId}/earnings", courier_earnings_get.New(log, app.Orders)).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodHead, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", request_id.Header}),
		handlers.ExposedHeaders([]string{request_id.Header}),
	)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
	)(cors(router))
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

// recoveryLogger пишет паники из gorilla/handlers.RecoveryHandler в общий логгер.
type recoveryLogger struct {
	log logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered", logger.NewField("panic", fmt.Sprint(v...)))
}
