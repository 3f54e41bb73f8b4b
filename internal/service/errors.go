package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/safeforhall/internal/membership"
	"github.com/mmynk/safeforhall/internal/resident"
	"github.com/mmynk/safeforhall/internal/storage"
)

// includeError maps include command failures to Connect errors carrying the
// human-readable message.
func includeError(err error) *connect.Error {
	var (
		empty *membership.EmptyResolutionError
		dup   *membership.DuplicateMemberError
	)
	switch {
	case errors.Is(err, resident.ErrFormat),
		errors.Is(err, resident.ErrAmbiguousMix),
		errors.Is(err, membership.ErrInvalidCommand):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, membership.ErrIndexOutOfRange), errors.As(err, &empty):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &dup):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, membership.ErrCapacityExceeded):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, storage.ErrEventNotFound):
		// The event changed between read and replace.
		return connect.NewError(connect.CodeAborted, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
