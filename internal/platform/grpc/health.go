// Package grpc holds client helpers for reaching the dice server.
package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	initialHealthBackoff = 200 * time.Millisecond
	maxHealthBackoff     = time.Second
)

// WaitForHealth blocks until the health service reports SERVING for service
// or ctx ends. Attempts back off from 200ms up to one second.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logger zerolog.Logger) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	backoff := initialHealthBackoff
	for {
		callCtx, cancel := context.WithTimeout(ctx, maxHealthBackoff)
		resp, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		switch {
		case err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			logger.Debug().Str("target", conn.Target()).Msg("gRPC health is SERVING")
			return nil
		case err != nil:
			logger.Debug().Err(err).Str("target", conn.Target()).Msg("waiting for gRPC health")
		default:
			logger.Debug().Str("status", resp.GetStatus().String()).Str("target", conn.Target()).Msg("waiting for gRPC health")
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxHealthBackoff)
	}
}
