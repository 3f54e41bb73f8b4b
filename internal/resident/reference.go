package resident

import (
	"fmt"
	"strings"
)

// ReferenceKind tells how a display token identifies a resident.
type ReferenceKind int

const (
	KindRoom ReferenceKind = iota + 1
	KindName
)

func (k ReferenceKind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindName:
		return "name"
	default:
		return "unknown"
	}
}

// Reference is one display token: a room code or a person name.
type Reference struct {
	Kind  ReferenceKind
	Value string
}

// ParseReference classifies a single display token.
func ParseReference(token string) (Reference, error) {
	switch {
	case IsRoom(token):
		return Reference{Kind: KindRoom, Value: token}, nil
	case IsName(token):
		return Reference{Kind: KindName, Value: token}, nil
	default:
		return Reference{}, fmt.Errorf("%w: %q is neither a room nor a name", ErrFormat, token)
	}
}

// Matches reports whether the reference points at a resident with the given
// room and name. Both comparisons ignore case.
func (r Reference) Matches(room, name string) bool {
	if r.Kind == KindRoom {
		return strings.EqualFold(r.Value, room)
	}
	return strings.EqualFold(r.Value, name)
}

// References is a parsed display form. All entries share one kind.
//
// Mixing rooms and names in one list is rejected. This is a deliberate
// simplification: a mixed list is ambiguous about which lookup the operator
// meant, and the rule stands until product settles how mixed input should
// resolve.
type References struct {
	Kind   ReferenceKind
	Tokens []Reference
}

// ParseReferences parses a display form. The sentinel yields an empty list.
func ParseReferences(input string) (References, error) {
	if strings.TrimSpace(input) == Sentinel {
		return References{}, nil
	}
	tokens, ok := splitTokens(input)
	if !ok {
		return References{}, fmt.Errorf("%w: %q", ErrFormat, input)
	}

	refs := References{Tokens: make([]Reference, 0, len(tokens))}
	for _, token := range tokens {
		ref, err := ParseReference(token)
		if err != nil {
			return References{}, err
		}
		refs.Tokens = append(refs.Tokens, ref)
	}

	refs.Kind = refs.Tokens[0].Kind
	for _, ref := range refs.Tokens[1:] {
		if ref.Kind != refs.Kind {
			return References{}, fmt.Errorf("%w: %q", ErrAmbiguousMix, input)
		}
	}
	return refs, nil
}

// ValidateReferences returns nil for a well-formed display form, ErrFormat for
// malformed input, and ErrAmbiguousMix when rooms and names are mixed.
func ValidateReferences(input string) error {
	_, err := ParseReferences(input)
	return err
}

// IsValidReferences reports whether input is an acceptable display form.
func IsValidReferences(input string) bool {
	return ValidateReferences(input) == nil
}

// IsEmpty reports whether the list names nobody.
func (r References) IsEmpty() bool { return len(r.Tokens) == 0 }

// Len returns the number of tokens.
func (r References) Len() int { return len(r.Tokens) }

// String renders the list back into display form.
func (r References) String() string {
	if r.IsEmpty() {
		return Sentinel
	}
	values := make([]string, len(r.Tokens))
	for i, ref := range r.Tokens {
		values[i] = ref.Value
	}
	return strings.Join(values, ", ")
}
