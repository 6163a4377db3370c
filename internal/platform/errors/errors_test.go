package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeCoverage, "coverage")
	err := WithMetadata(CodeCoverage, "gap at 8", map[string]string{"Value": "8"})

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, New(CodeOverlap, "overlap")))
	assert.True(t, errors.Is(fmt.Errorf("build table: %w", err), sentinel))
}

func TestCauseIsUnwrapped(t *testing.T) {
	cause := errors.New("strconv failure")
	err := &Error{Code: CodeFormat, Message: "parse bound", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "parse bound: strconv failure", err.Error())
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOverlap, GetCode(fmt.Errorf("wrap: %w", New(CodeOverlap, "x"))))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
}

func TestGetMetadata(t *testing.T) {
	md := map[string]string{"Table": "T"}
	assert.Equal(t, md, GetMetadata(WithMetadata(CodeFormat, "x", md)))
	assert.Nil(t, GetMetadata(errors.New("plain")))
}

func TestHandleErrorDomainError(t *testing.T) {
	err := HandleError(WithMetadata(CodeCommandNotRecognized, "no handler", map[string]string{"Command": "foo"}))

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	var localized *errdetails.LocalizedMessage
	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.LocalizedMessage:
			localized = d
		case *errdetails.ErrorInfo:
			info = d
		}
	}
	require.NotNil(t, localized)
	require.NotNil(t, info)
	assert.Equal(t, "Command not understood: foo", localized.GetMessage())
	assert.Equal(t, string(CodeCommandNotRecognized), info.GetReason())
	assert.Equal(t, Domain, info.GetDomain())
}

func TestGRPCStatusIsUsedByStatusFromError(t *testing.T) {
	var err error = New(CodeCommandEmpty, "empty")

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "empty", st.Message())
	assert.Len(t, st.Details(), 2)
}

func TestHandleErrorUnknown(t *testing.T) {
	assert.Nil(t, HandleError(nil))

	st, ok := status.FromError(HandleError(errors.New("boom")))
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestGRPCCode(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, CodeFormat.GRPCCode())
	assert.Equal(t, codes.Internal, CodeInvariantViolation.GRPCCode())
	assert.Equal(t, codes.Internal, CodeUnknown.GRPCCode())
}

func TestUserMessage(t *testing.T) {
	err := WithMetadata(CodeOverlap, "overlap", map[string]string{"Table": "T", "Value": "7"})
	assert.Equal(t, "Table T covers roll 7 more than once", UserMessage(err))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}
