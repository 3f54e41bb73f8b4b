package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/safeforhall/internal/resident"
)

// ErrInvalidCapacity is returned for events whose capacity is not positive.
var ErrInvalidCapacity = errors.New("capacity must be a positive integer")

// Event represents a scheduled hall event and the residents attending it.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// Name is the display name of the event (e.g. "Football Training").
	Name string

	// Date is the event date in DD-MM-YYYY form.
	Date string

	// Time is the start time in HHMM form.
	Time string

	Venue string

	// Capacity is the most residents the event may hold.
	Capacity int

	// Residents is the event's member list. A new event starts empty.
	Residents resident.List

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// Validate checks the fields an event must carry before it is stored.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("event name is required")
	}
	if e.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, e.Capacity)
	}
	return nil
}

// WithResidents returns a copy of the event holding the given resident list.
func (e Event) WithResidents(residents resident.List) Event {
	e.Residents = residents
	return e
}

// HasResident reports whether the person is among the event's residents.
func (e Event) HasResident(p Person) bool {
	return e.Residents.Contains(p.Record())
}
