package server

import (
	"context"
	"testing"
	"time"

	"github.com/louisbranch/dicebot/internal/core/choice"
	"github.com/louisbranch/dicebot/internal/core/command"
	"github.com/louisbranch/dicebot/internal/core/random/randomtest"
	platformgrpc "github.com/louisbranch/dicebot/internal/platform/grpc"
	dicegrpc "github.com/louisbranch/dicebot/internal/services/dice/api/grpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewRequiresEvaluator(t *testing.T) {
	_, err := New("127.0.0.1:0", nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewRejectsBadAddress(t *testing.T) {
	dispatcher := command.NewDispatcher(randomtest.New(), nil)
	_, err := New("not-an-address", dispatcher, zerolog.Nop())
	assert.Error(t, err)
}

func TestServeEvaluatesAndStops(t *testing.T) {
	dispatcher := command.NewDispatcher(randomtest.New(1), []command.Handler{choice.Handler{}})
	server, err := New("127.0.0.1:0", dispatcher, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Serve(ctx) }()

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer dialCancel()
	conn, err := platformgrpc.DialWithHealth(dialCtx, server.Addr(), 2*time.Second, zerolog.Nop())
	require.NoError(t, err)
	defer conn.Close()

	health, err := grpc_health_v1.NewHealthClient(conn).Check(dialCtx, &grpc_health_v1.HealthCheckRequest{
		Service: dicegrpc.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.GetStatus())

	res, err := dicegrpc.NewClient(conn).Evaluate(dialCtx, "choice(X, Y)")
	require.NoError(t, err)
	assert.Equal(t, "(choice(X,Y)) ＞ X", res.Text)

	cancel()
	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestAddrNil(t *testing.T) {
	var s *Server
	assert.Empty(t, s.Addr())
	assert.Error(t, s.Serve(context.Background()))
	s.Close()
}
