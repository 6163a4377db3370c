package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/louisbranch/dicebot/internal/core/choice"
	"github.com/louisbranch/dicebot/internal/core/command"
	"github.com/louisbranch/dicebot/internal/core/random/randomtest"
	"github.com/louisbranch/dicebot/internal/core/result"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeEvaluator map[string]result.Result

func (f fakeEvaluator) Eval(_ context.Context, text string) (result.Result, bool) {
	res, ok := f[text]
	return res, ok
}

func newTestClient(t *testing.T, eval Evaluator) *Client {
	t.Helper()

	listener := bufconn.Listen(1 << 16)
	server := grpc.NewServer()
	RegisterDiceServiceServer(server, NewService(eval))
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewClient(conn)
}

func TestServiceEvaluate(t *testing.T) {
	svc := NewService(fakeEvaluator{
		"SR7": result.New(true, "(SR7:4d10, 1d10) ＞ ..."),
	})

	resp, err := svc.Evaluate(context.Background(), &structpb.Struct{Fields: map[string]*structpb.Value{
		"text": structpb.NewStringValue("  SR7 "),
	}})
	require.NoError(t, err)
	assert.True(t, resp.GetFields()["secret"].GetBoolValue())
	assert.Equal(t, "(SR7:4d10, 1d10) ＞ ...", resp.GetFields()["text"].GetStringValue())
}

func TestServiceEvaluateErrors(t *testing.T) {
	svc := NewService(fakeEvaluator{})

	tests := []struct {
		name   string
		req    *structpb.Struct
		reason apperrors.Code
	}{
		{"nil request", nil, apperrors.CodeCommandEmpty},
		{"missing text", &structpb.Struct{}, apperrors.CodeCommandEmpty},
		{"unknown", &structpb.Struct{Fields: map[string]*structpb.Value{
			"text": structpb.NewStringValue("roll it"),
		}}, apperrors.CodeCommandNotRecognized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Evaluate(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Equal(t, string(tt.reason), Reason(err))
		})
	}
}

func TestClientRoundTrip(t *testing.T) {
	dispatcher := command.NewDispatcher(randomtest.New(2), []command.Handler{choice.Handler{}})
	client := newTestClient(t, dispatcher)

	res, err := client.Evaluate(context.Background(), "choice[A,B,C]")
	require.NoError(t, err)
	assert.Equal(t, result.New(false, "(choice[A,B,C]) ＞ B"), res)
}

func TestClientNotRecognized(t *testing.T) {
	client := newTestClient(t, fakeEvaluator{})

	_, err := client.Evaluate(context.Background(), "hello there")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, string(apperrors.CodeCommandNotRecognized), Reason(err))
	assert.Equal(t, "Command not understood: hello there", UserMessage(err))
}

func TestUserMessageFallbacks(t *testing.T) {
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Equal(t, "denied", UserMessage(status.Error(codes.PermissionDenied, "denied")))
	assert.Empty(t, Reason(errors.New("plain")))
}
