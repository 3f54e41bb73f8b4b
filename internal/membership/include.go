// Package membership implements the include command, which adds residents to
// an event's resident list.
package membership

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
)

// Model is the part of the hall store the include command works against.
type Model interface {
	PersonFinder
	ListEvents(ctx context.Context) ([]models.Event, error)
	ReplaceEvent(ctx context.Context, old, updated *models.Event) error
}

// Include adds the residents named by a reference list to the event at a
// 1-based index of the event list.
type Include struct {
	Index     int
	Residents resident.References
}

// NewInclude creates an Include command.
func NewInclude(index int, residents resident.References) *Include {
	return &Include{Index: index, Residents: residents}
}

// Result describes a successful include.
type Result struct {
	Event   models.Event
	Added   []models.Person
	Message string
}

// Execute runs the command. On any error the stored event is left unchanged.
func (c *Include) Execute(ctx context.Context, model Model) (*Result, error) {
	events, err := model.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if c.Index < 1 || c.Index > len(events) {
		return nil, ErrIndexOutOfRange
	}
	event := events[c.Index-1]

	toAdd, err := ResolvePersons(ctx, model, c.Residents)
	if err != nil {
		return nil, err
	}
	if len(toAdd) == 0 {
		return nil, &EmptyResolutionError{Spec: c.Residents.String()}
	}

	updated, err := Admit(event, toAdd)
	if err != nil {
		return nil, err
	}

	if err := model.ReplaceEvent(ctx, &event, &updated); err != nil {
		return nil, fmt.Errorf("failed to save event %q: %w", event.Name, err)
	}

	names := make([]string, len(toAdd))
	for i, p := range toAdd {
		names[i] = p.Name
	}
	slog.Debug("Residents included",
		"event_id", event.ID,
		"added", len(toAdd),
		"residents", updated.Residents.Len(),
		"capacity", updated.Capacity,
	)

	return &Result{
		Event:   updated,
		Added:   toAdd,
		Message: fmt.Sprintf("%s added to event %s", strings.Join(names, ", "), event.Name),
	}, nil
}

// Admit returns event with toAdd appended to its residents. It fails with a
// *DuplicateMemberError if anyone in toAdd already attends, and with
// ErrCapacityExceeded if the merged list is larger than the event's capacity.
// event itself is not modified.
func Admit(event models.Event, toAdd []models.Person) (models.Event, error) {
	if err := checkDuplicates(event.Residents, toAdd); err != nil {
		return models.Event{}, err
	}

	records := make([]resident.Record, len(toAdd))
	for i, p := range toAdd {
		records[i] = p.Record()
	}
	merged := event.Residents.Combine(records)

	if merged.Len() > event.Capacity {
		return models.Event{}, ErrCapacityExceeded
	}
	return event.WithResidents(merged), nil
}

func checkDuplicates(current resident.List, toAdd []models.Person) error {
	var names []string
	for _, p := range toAdd {
		if current.Contains(p.Record()) {
			names = append(names, p.Name)
		}
	}
	if len(names) > 0 {
		return &DuplicateMemberError{Names: names}
	}
	return nil
}
