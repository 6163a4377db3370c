// Package mcp serves command evaluation as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/result"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "dicebot"
	serverVersion = "0.1.0"
)

// Evaluator recognizes and evaluates command text.
type Evaluator interface {
	Eval(ctx context.Context, text string) (result.Result, bool)
	Handlers() []string
}

// DiceCommandInput is the dice_command tool input.
type DiceCommandInput struct {
	Text string `json:"text" jsonschema:"the command text, e.g. choice[A,B,C] or SR7"`
}

// DiceCommandResult is the dice_command tool output.
type DiceCommandResult struct {
	Recognized bool   `json:"recognized" jsonschema:"whether any command grammar matched the text"`
	Secret     bool   `json:"secret" jsonschema:"whether the result should be shown only to the requester"`
	Text       string `json:"text,omitempty" jsonschema:"the rendered result"`
}

// HandlersInput is the dice_handlers tool input.
type HandlersInput struct{}

// HandlersResult is the dice_handlers tool output.
type HandlersResult struct {
	Handlers []string `json:"handlers" jsonschema:"command grammars in dispatch order"`
}

// DiceCommandTool defines the MCP tool schema for evaluating a command.
func DiceCommandTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_command",
		Description: "Evaluates a dice bot command such as choice[A,B,C], SR7, CH50 or a table command",
	}
}

// HandlersTool defines the MCP tool schema for listing command grammars.
func HandlersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_handlers",
		Description: "Lists the command grammars the dice bot recognizes, in dispatch order",
	}
}

// DiceCommandHandler evaluates input.Text. Unrecognized text is not an
// error; the result reports recognized=false.
func DiceCommandHandler(eval Evaluator) mcp.ToolHandlerFor[DiceCommandInput, DiceCommandResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DiceCommandInput) (*mcp.CallToolResult, DiceCommandResult, error) {
		text := strings.TrimSpace(input.Text)
		if text == "" {
			return nil, DiceCommandResult{}, errors.New("text is required")
		}
		res, ok := eval.Eval(ctx, text)
		if !ok {
			return nil, DiceCommandResult{}, nil
		}
		return nil, DiceCommandResult{Recognized: true, Secret: res.Secret, Text: res.Text}, nil
	}
}

// HandlersHandler lists the evaluator's handlers.
func HandlersHandler(eval Evaluator) mcp.ToolHandlerFor[HandlersInput, HandlersResult] {
	return func(context.Context, *mcp.CallToolRequest, HandlersInput) (*mcp.CallToolResult, HandlersResult, error) {
		return nil, HandlersResult{Handlers: eval.Handlers()}, nil
	}
}

// New returns an MCP server exposing the dice tools.
func New(eval Evaluator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, DiceCommandTool(), DiceCommandHandler(eval))
	mcp.AddTool(server, HandlersTool(), HandlersHandler(eval))
	return server
}

// Run serves the dice tools over transport until ctx ends or the client
// disconnects.
func Run(ctx context.Context, eval Evaluator, transport mcp.Transport) error {
	if eval == nil {
		return errors.New("evaluator is required")
	}
	if transport == nil {
		transport = &mcp.StdioTransport{}
	}
	err := New(eval).Run(ctx, transport)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
