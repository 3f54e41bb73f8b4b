package models

import (
	"fmt"

	"github.com/mmynk/safeforhall/internal/resident"
)

// Person represents a resident of the hall.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Name is the resident's full name, letters and single spaces only.
	Name string

	// Room is the room code, one letter followed by three digits (e.g. "A101").
	Room string

	Phone string
	Email string

	// Vaccinated is the resident's vaccination status.
	Vaccinated bool

	// Faculty is the faculty the resident belongs to (e.g. "SOC").
	Faculty string

	// LastFetDate and LastCollectionDate are the latest fast-and-easy-test
	// and test-kit collection dates. Either may be unset.
	LastFetDate        resident.Date
	LastCollectionDate resident.Date

	// CreatedAt is the Unix timestamp when the person was added.
	CreatedAt int64
}

// Record projects the person onto the record stored in event resident lists.
func (p Person) Record() resident.Record {
	return resident.Record{
		Name:               p.Name,
		Room:               p.Room,
		Phone:              p.Phone,
		Email:              p.Email,
		Vaccinated:         p.Vaccinated,
		Faculty:            p.Faculty,
		LastFetDate:        p.LastFetDate,
		LastCollectionDate: p.LastCollectionDate,
	}
}

// String returns the person serialized as a storage-form record.
func (p Person) String() string {
	return p.Record().String()
}

// Validate checks the person's fields against the resident record grammar.
func (p Person) Validate() error {
	if err := p.Record().Validate(); err != nil {
		return fmt.Errorf("invalid person: %w", err)
	}
	return nil
}

// IsSamePerson reports whether other has the same room and name.
func (p Person) IsSamePerson(other Person) bool {
	return p.Record().SameResident(other.Record())
}
