package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"marketplace/internal/app"
	"marketplace/internal/gateway/notifier"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
)

const (
	drainDelay      = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.LoadWorker()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel, "marketplace-notifications")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger
	log.Info("starting notification worker",
		logger.NewField("topic", cfg.Kafka.Topic),
		logger.NewField("group", cfg.Kafka.ConsumerGroup),
	)

	if err := run(context.Background(), log, cfg); err != nil {
		log.Error("worker failed", logger.NewField("error", err))
	}
}

// run читает order.status.changed, пока не придёт SIGTERM. Сообщение, взятое
// в обработку, дорабатывает на отдельном контексте, который гасится последним.
//
//nolint:contextcheck // processingCtx намеренно не наследует ctx сигнала
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	processingCtx, stopProcessing := context.WithCancel(context.Background())
	defer stopProcessing()

	handler := app.InitializeNotificationWorker(log, notifier.NewLogNotifier(log), cfg)

	consumer, err := kafka.NewConsumer(signalCtx, log, &cfg.Kafka, handler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	var isShuttingDown atomic.Bool
	opsServer := &http.Server{
		Addr:              ":" + cfg.Kafka.PortHealthcheck,
		Handler:           opsRouter(&isShuttingDown),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(signalCtx)

	group.Go(func() error {
		log.Info("ops server starting", logger.NewField("port", cfg.Kafka.PortHealthcheck))
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("kafka consumer starting", logger.NewField("brokers", kafka.ParseBrokers(cfg.Kafka.Brokers)))
		err := consumer.Start(processingCtx)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return nil
		}
		return fmt.Errorf("consume: %w", err)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("stopping worker")

		isShuttingDown.Store(true)
		time.Sleep(drainDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("ops server shutdown", logger.NewField("error", err))
		}

		stopProcessing()
		if err := consumer.Close(); err != nil {
			log.Error("failed to close kafka consumer", logger.NewField("error", err))
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info("worker stopped")
	return nil
}

// opsRouter healthcheck для оркестратора и метрики уведомлений.
func opsRouter(isShuttingDown *atomic.Bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthcheck", healthcheck_head.New(isShuttingDown))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
