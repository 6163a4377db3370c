// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Table construction errors
	CodeFormat       Code = "FORMAT"
	CodeTypeMismatch Code = "TYPE_MISMATCH"
	CodeCoverage     Code = "COVERAGE"
	CodeOverlap      Code = "OVERLAP"

	// Table query errors
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"

	// Command errors
	CodeCommandNotRecognized Code = "COMMAND_NOT_RECOGNIZED"
	CodeCommandEmpty         Code = "COMMAND_EMPTY"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeFormat,
		CodeTypeMismatch,
		CodeCoverage,
		CodeOverlap,
		CodeCommandNotRecognized,
		CodeCommandEmpty:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
