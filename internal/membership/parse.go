package membership

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/safeforhall/internal/resident"
)

// PrefixResidents introduces the resident references in include arguments.
const PrefixResidents = "r/"

// Usage describes the include command arguments.
const Usage = "include: Adds residents to the given event.\n" +
	"Parameters: INDEX " + PrefixResidents + "ROOM/NAME\n" +
	"Example: include 1 " + PrefixResidents + "A101, A102, A103"

// ParseInclude parses "INDEX r/REFERENCES" into an Include command. INDEX is
// 1-based.
func ParseInclude(args string) (*Include, error) {
	before, spec, ok := strings.Cut(strings.TrimSpace(args), PrefixResidents)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s\n%s", ErrInvalidCommand, PrefixResidents, Usage)
	}

	index, err := strconv.Atoi(strings.TrimSpace(before))
	if err != nil || index <= 0 {
		return nil, fmt.Errorf("%w: index must be a positive integer\n%s", ErrInvalidCommand, Usage)
	}

	refs, err := resident.ParseReferences(spec)
	if err != nil {
		return nil, err
	}

	return NewInclude(index, refs), nil
}
