// Package server wires the dice evaluator and the gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/louisbranch/dicebot/internal/services/dice/api/grpc"
	"github.com/louisbranch/dicebot/internal/systems"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Server hosts the dice gRPC API.
type Server struct {
	listener   net.Listener
	grpcServer *gogrpc.Server
	health     *health.Server
	logger     zerolog.Logger
}

// New creates a server listening on addr and evaluating through eval.
func New(addr string, eval grpc.Evaluator, logger zerolog.Logger) (*Server, error) {
	if eval == nil {
		return nil, errors.New("evaluator is required")
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc.RegisterDiceServiceServer(grpcServer, grpc.NewService(eval))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(grpc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run builds the dispatcher from cfg and serves on port until ctx ends.
func Run(ctx context.Context, port int, cfg systems.Config, logger zerolog.Logger) error {
	dispatcher, err := systems.NewDispatcher(cfg, logger)
	if err != nil {
		return err
	}
	server, err := New(fmt.Sprintf(":%d", port), dispatcher, logger)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	s.logger.Info().Str("addr", s.Addr()).Msg("dice server listening")
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		s.logger.Info().Msg("dice server stopped")
		return serveResult(err)
	case err := <-serveErr:
		return serveResult(err)
	}
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
