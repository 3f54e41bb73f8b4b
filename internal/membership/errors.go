package membership

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when the event index names no event.
	ErrIndexOutOfRange = errors.New("index given is invalid")

	// ErrCapacityExceeded is returned when the merged list would not fit.
	ErrCapacityExceeded = errors.New("number of residents to add exceeds event capacity")

	// ErrInvalidCommand is returned for arguments that do not follow
	// "INDEX r/ROOM/NAME".
	ErrInvalidCommand = errors.New("invalid command format")
)

// EmptyResolutionError is returned when the resident references match no
// known person.
type EmptyResolutionError struct {
	Spec string
}

func (e *EmptyResolutionError) Error() string {
	return fmt.Sprintf("no person with this information '%s' could be found", e.Spec)
}

// DuplicateMemberError lists residents that are already in the event.
type DuplicateMemberError struct {
	Names []string
}

func (e *DuplicateMemberError) Error() string {
	verb := "are"
	if len(e.Names) == 1 {
		verb = "is"
	}
	return fmt.Sprintf("%s %s already in this event", strings.Join(e.Names, ", "), verb)
}
