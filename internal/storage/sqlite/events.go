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

const eventColumns = `id, name, date, time, venue, capacity, residents_display, residents_storage, created_at`

// CreateEvent persists a new event along with its resident list forms.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.Name,
		event.Date,
		event.Time,
		event.Venue,
		event.Capacity,
		event.Residents.Display(),
		event.Residents.Storage(),
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID.
func (s *SQLiteStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, eventID)
	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrEventNotFound, eventID)
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents retrieves all events in creation order.
func (s *SQLiteStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// ReplaceEvent overwrites the stored event with updated, provided the stored
// row still holds old's resident list.
func (s *SQLiteStore) ReplaceEvent(ctx context.Context, old, updated *models.Event) error {
	if old.ID != updated.ID {
		return fmt.Errorf("cannot replace event %s with event %s", old.ID, updated.ID)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE events
		 SET name = ?, date = ?, time = ?, venue = ?, capacity = ?, residents_display = ?, residents_storage = ?
		 WHERE id = ? AND residents_storage = ?`,
		updated.Name,
		updated.Date,
		updated.Time,
		updated.Venue,
		updated.Capacity,
		updated.Residents.Display(),
		updated.Residents.Storage(),
		old.ID,
		old.Residents.Storage(),
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrEventNotFound, old.ID)
	}
	return nil
}

func scanEvent(row scanner) (*models.Event, error) {
	var (
		event           models.Event
		display, stored string
	)
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Time,
		&event.Venue,
		&event.Capacity,
		&display,
		&stored,
		&event.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}

	event.Residents, err = resident.FromForms(display, stored)
	if err != nil {
		return nil, fmt.Errorf("event %s has an unreadable resident list: %w", event.ID, err)
	}
	return &event, nil
}
