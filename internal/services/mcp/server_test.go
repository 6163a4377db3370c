package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/louisbranch/dicebot/internal/core/choice"
	"github.com/louisbranch/dicebot/internal/core/command"
	"github.com/louisbranch/dicebot/internal/core/random/randomtest"
	"github.com/louisbranch/dicebot/internal/systems/chill"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(faces ...int) *command.Dispatcher {
	handlers := append([]command.Handler{choice.Handler{}}, chill.Handlers()...)
	return command.NewDispatcher(randomtest.New(faces...), handlers)
}

func connect(t *testing.T, eval Evaluator) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := New(eval).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestDiceCommandHandler(t *testing.T) {
	handler := DiceCommandHandler(newDispatcher(2))

	_, out, err := handler(context.Background(), nil, DiceCommandInput{Text: " Schoice[A,B] "})
	require.NoError(t, err)
	assert.Equal(t, DiceCommandResult{Recognized: true, Secret: true, Text: "(choice[A,B]) ＞ B"}, out)

	_, out, err = handler(context.Background(), nil, DiceCommandInput{Text: "good morning"})
	require.NoError(t, err)
	assert.False(t, out.Recognized)

	_, _, err = handler(context.Background(), nil, DiceCommandInput{Text: "  "})
	assert.Error(t, err)
}

func TestListTools(t *testing.T) {
	session := connect(t, newDispatcher())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"dice_command", "dice_handlers"}, names)
}

func TestCallDiceCommand(t *testing.T) {
	session := connect(t, newDispatcher(37))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "dice_command",
		Arguments: map[string]any{"text": "CH50"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok, "structured content %T", res.StructuredContent)
	assert.Equal(t, true, out["recognized"])
	assert.Equal(t, false, out["secret"])
	assert.Equal(t, "(CH50) ＞ 37 ＞ Medium success", out["text"])
}

func TestCallHandlers(t *testing.T) {
	session := connect(t, newDispatcher())

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "dice_handlers",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)

	out, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"choice", "chill.strike_rank", "chill.check"}, out["handlers"])
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	done := make(chan error, 1)
	go func() { done <- Run(ctx, newDispatcher(), serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestRunRequiresEvaluator(t *testing.T) {
	assert.Error(t, Run(context.Background(), nil, nil))
}
