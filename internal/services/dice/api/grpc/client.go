package grpc

import (
	"context"
	"fmt"

	"github.com/louisbranch/dicebot/internal/core/result"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls DiceService.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient returns a client using conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Evaluate sends text to the server and returns its result.
func (c *Client) Evaluate(ctx context.Context, text string, opts ...grpc.CallOption) (result.Result, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldText: structpb.NewStringValue(text),
	}}
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, EvaluateMethod, req, resp, opts...); err != nil {
		return result.Result{}, fmt.Errorf("evaluate: %w", err)
	}
	return structToResult(resp), nil
}

// UserMessage returns the localized message a DiceService error carries,
// falling back to the status message.
func UserMessage(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok && msg.GetMessage() != "" {
			return msg.GetMessage()
		}
	}
	return st.Message()
}

// Reason returns the ErrorInfo reason of a DiceService error, or "".
func Reason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
