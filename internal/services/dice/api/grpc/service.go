// Package grpc exposes command evaluation as dicebot.v1.DiceService.
//
// Messages are google.protobuf.Struct values so the service needs no
// generated code:
//
//	EvaluateRequest  {"text": "choice[A,B]"}
//	EvaluateResponse {"secret": false, "text": "(choice[A,B]) ＞ A"}
package grpc

import (
	"context"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/result"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "dicebot.v1.DiceService"
	// EvaluateMethod is the full method path of Evaluate.
	EvaluateMethod = "/" + ServiceName + "/Evaluate"

	fieldText   = "text"
	fieldSecret = "secret"
)

// Evaluator recognizes and evaluates command text.
type Evaluator interface {
	Eval(ctx context.Context, text string) (result.Result, bool)
}

// DiceServiceServer is the server API for DiceService.
type DiceServiceServer interface {
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Service implements DiceServiceServer over an Evaluator.
type Service struct {
	eval Evaluator
}

// NewService returns a dice service evaluating through eval.
func NewService(eval Evaluator) *Service {
	return &Service{eval: eval}
}

// Evaluate runs the command in the request's "text" field.
// Empty and unrecognized text fail with InvalidArgument.
func (s *Service) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	text := strings.TrimSpace(req.GetFields()[fieldText].GetStringValue())
	if text == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeCommandEmpty, "command text is required"))
	}

	res, ok := s.eval.Eval(ctx, text)
	if !ok {
		return nil, apperrors.HandleError(apperrors.WithMetadata(
			apperrors.CodeCommandNotRecognized,
			"command not recognized",
			map[string]string{"Command": text},
		))
	}
	return resultToStruct(res), nil
}

func resultToStruct(res result.Result) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldSecret: structpb.NewBoolValue(res.Secret),
		fieldText:   structpb.NewStringValue(res.Text),
	}}
}

func structToResult(s *structpb.Struct) result.Result {
	fields := s.GetFields()
	return result.New(fields[fieldSecret].GetBoolValue(), fields[fieldText].GetStringValue())
}

// RegisterDiceServiceServer registers srv on s.
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceServiceDesc, srv)
}

func evaluateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).Evaluate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// DiceServiceDesc describes DiceService for grpc.ServiceRegistrar.
var DiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    evaluateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dicebot/v1/dice.proto",
}
