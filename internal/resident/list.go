package resident

import (
	"fmt"
	"strings"
)

// Entry pairs a member's display reference with its stored record.
type Entry struct {
	Ref    Reference
	Record Record
}

// List is the resident list owned by an event. The zero value is empty.
// A List is immutable; operations that change membership return a new List.
type List struct {
	entries []Entry

	// display and storage hold the forms exactly as read by FromForms, or as
	// extended by Combine. Empty means render from entries.
	display string
	storage string
}

// Empty returns a list with no members.
func Empty() List { return List{} }

// FromForms rebuilds a list from its persisted display and storage forms.
// Both forms must be valid and name the same number of members.
func FromForms(display, storage string) (List, error) {
	displayTrimmed := strings.TrimSpace(display)
	storageTrimmed := strings.TrimSpace(storage)
	if displayTrimmed == Sentinel && storageTrimmed == Sentinel {
		return List{display: display, storage: storage}, nil
	}
	if displayTrimmed == Sentinel || storageTrimmed == Sentinel {
		return List{}, fmt.Errorf("%w: display %q and storage %q disagree on emptiness", ErrFormat, display, storage)
	}

	refs, ok := splitTokens(display)
	if !ok {
		return List{}, fmt.Errorf("%w: display %q", ErrFormat, display)
	}
	tokens, err := storageTokens(storage)
	if err != nil {
		return List{}, err
	}
	if len(refs) != len(tokens) {
		return List{}, fmt.Errorf("%w: display has %d members, storage has %d", ErrFormat, len(refs), len(tokens))
	}

	entries := make([]Entry, len(tokens))
	for i := range tokens {
		// Stored display forms hold whatever reference was used when the
		// member was added, so kinds are not required to agree here.
		ref, err := ParseReference(refs[i])
		if err != nil {
			return List{}, err
		}
		rec, err := DecodeRecord(tokens[i])
		if err != nil {
			return List{}, err
		}
		entries[i] = Entry{Ref: ref, Record: rec}
	}
	return List{entries: entries, display: display, storage: storage}, nil
}

// FromRecords builds a list whose display form holds each record's name.
func FromRecords(records []Record) List {
	return Empty().Combine(records)
}

// Combine returns a new list holding the receiver's members followed by toAdd,
// in input order. Each added member is referenced by name. The receiver's forms
// are kept verbatim and the new members appended after ", ". The receiver is
// not modified. Duplicate and capacity rules are the caller's concern.
func (l List) Combine(toAdd []Record) List {
	if len(toAdd) == 0 {
		return l
	}
	added := make([]Entry, len(toAdd))
	for i, rec := range toAdd {
		added[i] = Entry{
			Ref:    Reference{Kind: KindName, Value: rec.Name},
			Record: rec,
		}
	}

	entries := make([]Entry, 0, len(l.entries)+len(added))
	entries = append(entries, l.entries...)
	entries = append(entries, added...)
	out := List{entries: entries}
	if !l.IsEmpty() {
		tail := List{entries: added}
		out.display = l.Display() + ", " + tail.Display()
		out.storage = l.Storage() + ", " + tail.Storage()
	}
	return out
}

// Len returns the number of members.
func (l List) Len() int { return len(l.entries) }

// IsEmpty reports whether the list has no members.
func (l List) IsEmpty() bool { return len(l.entries) == 0 }

// Entries returns a copy of the member entries.
func (l List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Records returns the decoded member records in order.
func (l List) Records() []Record {
	out := make([]Record, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Record
	}
	return out
}

// Display renders the display form.
func (l List) Display() string {
	if l.display != "" {
		return l.display
	}
	if l.IsEmpty() {
		return Sentinel
	}
	parts := make([]string, len(l.entries))
	for i, e := range l.entries {
		parts[i] = e.Ref.Value
	}
	return strings.Join(parts, ", ")
}

// Storage renders the storage form.
func (l List) Storage() string {
	if l.storage != "" {
		return l.storage
	}
	if l.IsEmpty() {
		return Sentinel
	}
	parts := make([]string, len(l.entries))
	for i, e := range l.entries {
		parts[i] = e.Record.String()
	}
	return strings.Join(parts, ", ")
}

// Contains reports whether a member with the same room and name is present.
func (l List) Contains(rec Record) bool {
	for _, e := range l.entries {
		if e.Record.SameResident(rec) {
			return true
		}
	}
	return false
}

// HasUnvaccinated reports whether any member is unvaccinated.
func (l List) HasUnvaccinated() bool {
	return l.NumUnvaccinated() > 0
}

// NumUnvaccinated counts unvaccinated members.
func (l List) NumUnvaccinated() int {
	n := 0
	for _, e := range l.entries {
		if !e.Record.Vaccinated {
			n++
		}
	}
	return n
}
