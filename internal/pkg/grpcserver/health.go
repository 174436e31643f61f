package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
	"marketplace/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
	MinPingInterval  = 30 * time.Second
)

// HealthServer отдаёт стандартный grpc.health.v1 для оркестратора и балансировщиков.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
	port   string
}

func NewHealthServer(log logger.Logger, port string) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime: MinPingInterval,
		}),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)
	reflection.Register(server)

	return &HealthServer{
		log:    log.With(logger.NewField("component", "grpc-health"), logger.NewField("port", port)),
		server: server,
		health: hs,
		port:   port,
	}
}

// SetServing переключает общий статус сервера ("").
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

// Serve блокирует до остановки сервера.
func (s *HealthServer) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("listen grpc health: %w", err)
	}

	s.SetServing(true)
	s.log.Info("grpc health server started")

	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve grpc health: %w", err)
	}
	return nil
}

// Shutdown сначала помечает сервер как NOT_SERVING, потом останавливает его.
func (s *HealthServer) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
	s.log.Info("grpc health server stopped")
}
