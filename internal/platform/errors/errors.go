package errors

import (
	"github.com/louisbranch/dicebot/internal/platform/errors/i18n"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the error domain reported in gRPC error details.
const Domain = "github.com/louisbranch/dicebot"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Template values for the user message
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code, so sentinels
// declared with New compare equal to any error carrying the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and internal message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata creates a domain error whose user message is rendered from
// metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// UserMessage renders the error's message from the default catalog.
func (e *Error) UserMessage() string {
	return i18n.Default().Format(string(e.Code), e.Metadata)
}

// GRPCStatus converts the error to a status carrying an ErrorInfo and a
// LocalizedMessage. The status message stays the internal message; clients
// show the localized one. grpc-go calls this when a handler returns e.
func (e *Error) GRPCStatus() *status.Status {
	grpcCode := e.Code.GRPCCode()
	catalog := i18n.Default()
	st, err := status.New(grpcCode, e.Error()).WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
		&errdetails.LocalizedMessage{
			Locale:  catalog.Locale(),
			Message: catalog.Format(string(e.Code), e.Metadata),
		},
	)
	if err != nil {
		return status.New(grpcCode, e.Error())
	}
	return st
}
