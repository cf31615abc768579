package errors

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ErrorClass int

const (
	ClassInternal ErrorClass = iota
	ClassValidation
	ClassRetryExhausted
	ClassUpstreamRejected
	ClassUpstreamStatus
	ClassEmptyResult
	ClassUnknownSource
	ClassLogin
	ClassRateLimit
	ClassTransport
)

func (c ErrorClass) String() string {
	switch c {
	case ClassValidation:
		return "validation"
	case ClassRetryExhausted:
		return "retry_exhausted"
	case ClassUpstreamRejected:
		return "bad_request"
	case ClassUpstreamStatus:
		return "unknown_upstream_status"
	case ClassEmptyResult:
		return "empty_result"
	case ClassUnknownSource:
		return "unknown_source"
	case ClassLogin:
		return "login"
	case ClassRateLimit:
		return "rate_limit"
	case ClassTransport:
		return "transport"
	default:
		return "internal"
	}
}

type ClassifiedError struct {
	Class         ErrorClass
	InternalError error
	OperationName string
	Source        string
	Metadata      map[string]any
}

type ErrorClassifier struct {
	logger *slog.Logger
}

func NewErrorClassifier(logger *slog.Logger) *ErrorClassifier {
	return &ErrorClassifier{logger: logger}
}

var errorPool = sync.Pool{
	New: func() any {
		return &ClassifiedError{
			Metadata: make(map[string]any, 4), // Pre-size for common case
		}
	},
}

// Classify tags err with a class used for logging. Anything not recognised as
// one of the sentinel kinds is treated as a transport or decoding failure.
func (ec *ErrorClassifier) Classify(err error, operation string) *ClassifiedError {
	classified := errorPool.Get().(*ClassifiedError)
	classified.InternalError = err
	classified.OperationName = operation

	switch {
	case errors.Is(err, ErrInvalidInput):
		classified.Class = ClassValidation
	case errors.Is(err, ErrRetryExhausted):
		classified.Class = ClassRetryExhausted
	case errors.Is(err, ErrBadRequest):
		classified.Class = ClassUpstreamRejected
	case errors.Is(err, ErrUnknownUpstreamStatus):
		classified.Class = ClassUpstreamStatus
	case errors.Is(err, ErrEmptyResult):
		classified.Class = ClassEmptyResult
	case errors.Is(err, ErrUnknownSource):
		classified.Class = ClassUnknownSource
	case errors.Is(err, ErrLogin):
		classified.Class = ClassLogin
	case errors.Is(err, ErrRateLimit):
		classified.Class = ClassRateLimit
	default:
		classified.Class = ClassTransport
	}

	return classified
}

// LogAndSanitize logs the classified error and converts it to a gRPC status.
// Every class is reported as codes.Unknown with the error text as detail.
func (ec *ErrorClassifier) LogAndSanitize(ctx context.Context, classified *ClassifiedError) error {
	defer ec.putError(classified) // Return the object to the pool

	ec.logger.ErrorContext(ctx, "operation failed",
		"operation", classified.OperationName,
		"error_class", classified.Class.String(),
		"source", classified.Source,
		"internal_error", classified.InternalError.Error(),
		"metadata", classified.Metadata,
	)

	return ec.toGRPCError(classified)
}

func (ec *ErrorClassifier) toGRPCError(classified *ClassifiedError) error {
	return status.Error(codes.Unknown, classified.InternalError.Error())
}

func (ec *ErrorClassifier) putError(err *ClassifiedError) {
	err.InternalError = nil
	err.Source = ""
	for k := range err.Metadata {
		delete(err.Metadata, k)
	}
	err.OperationName = ""
	errorPool.Put(err)
}
