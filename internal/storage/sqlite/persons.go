package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
	"github.com/mmynk/safeforhall/internal/storage"
)

const personColumns = `id, name, room, phone, email, vaccinated, faculty, last_fet_date, last_collection_date, created_at`

// CreatePerson inserts a new person into the database.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO persons (`+personColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		person.ID,
		person.Name,
		person.Room,
		person.Phone,
		person.Email,
		person.Vaccinated,
		person.Faculty,
		person.LastFetDate.String(),
		person.LastCollectionDate.String(),
		person.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s (%s)", storage.ErrDuplicatePerson, person.Name, person.Room)
	}
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// ListPersons retrieves all persons ordered by room.
func (s *SQLiteStore) ListPersons(ctx context.Context) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM persons ORDER BY room`)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}
	return persons, nil
}

// FindPersonByRoom retrieves the person living in the given room.
func (s *SQLiteStore) FindPersonByRoom(ctx context.Context, room string) (*models.Person, error) {
	return s.findPerson(ctx, "room", room)
}

// FindPersonByName retrieves the person with the given name.
func (s *SQLiteStore) FindPersonByName(ctx context.Context, name string) (*models.Person, error) {
	return s.findPerson(ctx, "name", name)
}

func (s *SQLiteStore) findPerson(ctx context.Context, column, value string) (*models.Person, error) {
	// column is one of two constants above, never user input.
	row := s.db.QueryRowContext(ctx,
		`SELECT `+personColumns+` FROM persons WHERE `+column+` = ?`,
		value,
	)
	person, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s %s", storage.ErrPersonNotFound, column, value)
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner) (*models.Person, error) {
	var (
		person               models.Person
		fetDate, collectDate string
	)
	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Room,
		&person.Phone,
		&person.Email,
		&person.Vaccinated,
		&person.Faculty,
		&fetDate,
		&collectDate,
		&person.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan person: %w", err)
	}

	if person.LastFetDate, err = resident.ParseDate(fetDate); err != nil {
		return nil, fmt.Errorf("person %s: %w", person.ID, err)
	}
	if person.LastCollectionDate, err = resident.ParseDate(collectDate); err != nil {
		return nil, fmt.Errorf("person %s: %w", person.ID, err)
	}
	return &person, nil
}
