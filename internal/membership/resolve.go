package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
	"github.com/mmynk/safeforhall/internal/storage"
)

// PersonFinder looks up residents by room or name.
type PersonFinder interface {
	FindPersonByRoom(ctx context.Context, room string) (*models.Person, error)
	FindPersonByName(ctx context.Context, name string) (*models.Person, error)
}

// ResolvePersons maps each reference to a known person, in order. References
// that match nobody are skipped, and a person named twice is returned once.
func ResolvePersons(ctx context.Context, finder PersonFinder, refs resident.References) ([]models.Person, error) {
	var persons []models.Person
	for _, ref := range refs.Tokens {
		var (
			p   *models.Person
			err error
		)
		if ref.Kind == resident.KindRoom {
			p, err = finder.FindPersonByRoom(ctx, ref.Value)
		} else {
			p, err = finder.FindPersonByName(ctx, ref.Value)
		}
		if errors.Is(err, storage.ErrPersonNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s %q: %w", ref.Kind, ref.Value, err)
		}
		if !containsPerson(persons, *p) {
			persons = append(persons, *p)
		}
	}
	return persons, nil
}

func containsPerson(persons []models.Person, p models.Person) bool {
	for _, existing := range persons {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}
