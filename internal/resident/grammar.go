// Package resident implements the resident-list encoding stored on events.
//
// An event's members are persisted as two strings: a display form listing room
// codes or names, and a storage form holding a full snapshot of each member.
// Both use the sentinel "None" for an empty list. In memory the two are kept as
// one sequence of (reference, record) pairs and rendered on demand.
package resident

import (
	"errors"
	"regexp"
	"strings"
)

// Sentinel is the literal stored for an empty list in either form.
const Sentinel = "None"

var (
	// ErrFormat reports a malformed display or storage string.
	ErrFormat = errors.New("malformed resident list")

	// ErrAmbiguousMix reports a reference list that mixes room codes and names.
	ErrAmbiguousMix = errors.New("residents must be given either all by room or all by name")
)

var (
	roomPattern     = regexp.MustCompile(`^[A-Za-z]\d{3}$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z]+(\s[A-Za-z]+)*$`)
	phonePattern    = regexp.MustCompile(`^\d{3,}$`)
	emailPattern    = regexp.MustCompile(`^[^\s;,@]+@[^\s;,@]+$`)
	vaccPattern     = regexp.MustCompile(`^[TtFf]$`)
	facultyPattern  = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
	datePattern     = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// IsRoom reports whether s is a room code such as A101.
func IsRoom(s string) bool { return roomPattern.MatchString(s) }

// IsName reports whether s is a person name made of letters and single spaces.
func IsName(s string) bool { return namePattern.MatchString(s) }

// IsPhone reports whether s is a phone number of at least three digits.
func IsPhone(s string) bool { return phonePattern.MatchString(s) }

// IsEmail reports whether s can be stored as a record email.
func IsEmail(s string) bool { return emailPattern.MatchString(s) }

// IsFaculty reports whether s can be stored as a record faculty.
func IsFaculty(s string) bool { return facultyPattern.MatchString(s) }

// splitTokens trims the input and splits it on commas. Each token after a
// comma may be preceded by at most one space.
func splitTokens(input string) ([]string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, false
	}
	parts := strings.Split(trimmed, ",")
	tokens := make([]string, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			part = strings.TrimPrefix(part, " ")
		}
		if part == "" || strings.TrimLeft(part, " \t") != part {
			return nil, false
		}
		tokens = append(tokens, part)
	}
	return tokens, true
}

// sameLabel compares record labels ignoring case and runs of whitespace.
func sameLabel(got, want string) bool {
	got = whitespaceRunRe.ReplaceAllString(strings.TrimSpace(got), " ")
	return strings.EqualFold(got, want)
}
