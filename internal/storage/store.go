// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/safeforhall/internal/models"
)

var (
	// ErrPersonNotFound is returned when no person matches a lookup.
	ErrPersonNotFound = errors.New("person not found")

	// ErrDuplicatePerson is returned when a person's room or name is taken.
	ErrDuplicatePerson = errors.New("a person with this room or name already exists")

	// ErrEventNotFound is returned when an event is missing, including when
	// ReplaceEvent finds the stored event no longer matches the old value.
	ErrEventNotFound = errors.New("event not found")
)

// Store defines the interface for hall storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreatePerson persists a new person. ID and CreatedAt are populated
	// when unset.
	CreatePerson(ctx context.Context, person *models.Person) error

	// ListPersons returns every person ordered by room.
	ListPersons(ctx context.Context) ([]models.Person, error)

	// FindPersonByRoom returns the person living in room, ignoring case.
	FindPersonByRoom(ctx context.Context, room string) (*models.Person, error)

	// FindPersonByName returns the person with the given name, ignoring case.
	FindPersonByName(ctx context.Context, name string) (*models.Person, error)

	// CreateEvent persists a new event. ID and CreatedAt are populated when
	// unset.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEvents returns events in creation order. Command indexes refer to
	// positions in this list.
	ListEvents(ctx context.Context) ([]models.Event, error)

	// ReplaceEvent swaps old for updated. It fails with ErrEventNotFound when
	// old is no longer the stored value.
	ReplaceEvent(ctx context.Context, old, updated *models.Event) error

	// Close releases any resources held by the store.
	Close() error
}
