package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrChannelUnavailable = fmt.Errorf("subscription channel unavailable")
	ErrEmptyDraft         = fmt.Errorf("draft is empty")
	ErrWriteFailed        = fmt.Errorf("append to the ordered log failed")
	ErrSubmitInFlight     = fmt.Errorf("a submit is already in flight")
	ErrNoSession          = fmt.Errorf("no authenticated session")
	ErrInvalidRecord      = fmt.Errorf("invalid record")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrAuthorMismatch     = fmt.Errorf("record author does not match the session")
	ErrUnknownOrderKey    = fmt.Errorf("unknown order key")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrShuttingDown       = fmt.Errorf("server is shutting down")
)

// MapToGRPCError translates sentinel errors into gRPC status errors.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case stderrors.Is(err, ErrInvalidRecord),
		stderrors.Is(err, ErrInvalidRequest),
		stderrors.Is(err, ErrUnknownOrderKey):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrInvalidToken), stderrors.Is(err, ErrNoSession):
		return status.Error(codes.Unauthenticated, err.Error())
	case stderrors.Is(err, ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrAuthorMismatch):
		return status.Error(codes.PermissionDenied, err.Error())
	case stderrors.Is(err, ErrChannelUnavailable), stderrors.Is(err, ErrShuttingDown):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
