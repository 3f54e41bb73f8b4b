package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
	"github.com/mmynk/safeforhall/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testPerson(name, room string, vaccinated bool) *models.Person {
	return &models.Person{
		Name:        name,
		Room:        room,
		Phone:       "91234567",
		Email:       "resident@example.com",
		Vaccinated:  vaccinated,
		Faculty:     "SOC",
		LastFetDate: resident.NewDate(2021, time.October, 2),
	}
}

func TestPersons(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreatePerson generates ID", func(t *testing.T) {
		p := testPerson("Alex Yeoh", "E417", true)
		if err := store.CreatePerson(ctx, p); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		if p.ID == "" {
			t.Error("Expected person ID to be generated")
		}
		if p.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("CreatePerson rejects taken room", func(t *testing.T) {
		err := store.CreatePerson(ctx, testPerson("Someone Else", "e417", true))
		if !errors.Is(err, storage.ErrDuplicatePerson) {
			t.Errorf("Expected ErrDuplicatePerson, got %v", err)
		}
	})

	t.Run("FindPersonByRoom ignores case", func(t *testing.T) {
		p, err := store.FindPersonByRoom(ctx, "e417")
		if err != nil {
			t.Fatalf("FindPersonByRoom failed: %v", err)
		}
		if p.Name != "Alex Yeoh" {
			t.Errorf("Name mismatch: got %s, want Alex Yeoh", p.Name)
		}
		if p.LastFetDate != resident.NewDate(2021, time.October, 2) {
			t.Errorf("LastFetDate mismatch: got %s", p.LastFetDate)
		}
		if p.LastCollectionDate.IsSet() {
			t.Errorf("Expected unset collection date, got %s", p.LastCollectionDate)
		}
	})

	t.Run("FindPersonByName returns not found", func(t *testing.T) {
		_, err := store.FindPersonByName(ctx, "Nobody Here")
		if !errors.Is(err, storage.ErrPersonNotFound) {
			t.Errorf("Expected ErrPersonNotFound, got %v", err)
		}
	})

	t.Run("ListPersons orders by room", func(t *testing.T) {
		if err := store.CreatePerson(ctx, testPerson("Bernice Yu", "A213", false)); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		persons, err := store.ListPersons(ctx)
		if err != nil {
			t.Fatalf("ListPersons failed: %v", err)
		}
		if len(persons) != 2 {
			t.Fatalf("Expected 2 persons, got %d", len(persons))
		}
		if persons[0].Room != "A213" || persons[1].Room != "E417" {
			t.Errorf("Unexpected order: %s, %s", persons[0].Room, persons[1].Room)
		}
		if persons[0].Vaccinated {
			t.Error("Expected Bernice Yu to be unvaccinated")
		}
	})
}

func TestEvents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateEvent stores empty resident list", func(t *testing.T) {
		event := &models.Event{Name: "Football Training", Date: "20-10-2021", Time: "1800", Venue: "Field", Capacity: 5}
		if err := store.CreateEvent(ctx, event); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}

		got, err := store.GetEvent(ctx, event.ID)
		if err != nil {
			t.Fatalf("GetEvent failed: %v", err)
		}
		if got.Residents.Display() != resident.Sentinel || got.Residents.Storage() != resident.Sentinel {
			t.Errorf("Expected sentinel forms, got %q / %q", got.Residents.Display(), got.Residents.Storage())
		}
		if got.Capacity != 5 {
			t.Errorf("Capacity mismatch: got %d, want 5", got.Capacity)
		}
	})

	t.Run("GetEvent returns error for nonexistent event", func(t *testing.T) {
		_, err := store.GetEvent(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrEventNotFound) {
			t.Errorf("Expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("ReplaceEvent swaps resident list", func(t *testing.T) {
		events, err := store.ListEvents(ctx)
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		old := events[0]

		p := testPerson("Alex Yeoh", "E417", true)
		updated := old.WithResidents(old.Residents.Combine([]resident.Record{p.Record()}))
		if err := store.ReplaceEvent(ctx, &old, &updated); err != nil {
			t.Fatalf("ReplaceEvent failed: %v", err)
		}

		got, err := store.GetEvent(ctx, old.ID)
		if err != nil {
			t.Fatalf("GetEvent failed: %v", err)
		}
		if got.Residents.Display() != "Alex Yeoh" {
			t.Errorf("Display mismatch: got %q", got.Residents.Display())
		}
		if got.Residents.Storage() != p.String() {
			t.Errorf("Storage mismatch: got %q, want %q", got.Residents.Storage(), p.String())
		}

		// old no longer matches what is stored
		if err := store.ReplaceEvent(ctx, &old, &updated); !errors.Is(err, storage.ErrEventNotFound) {
			t.Errorf("Expected ErrEventNotFound for stale replace, got %v", err)
		}
	})

	t.Run("ListEvents keeps creation order", func(t *testing.T) {
		second := &models.Event{Name: "Dinner", Date: "21-10-2021", Time: "1900", Venue: "Hall", Capacity: 10, CreatedAt: time.Now().Unix() + 60}
		if err := store.CreateEvent(ctx, second); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		events, err := store.ListEvents(ctx)
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(events))
		}
		if events[0].Name != "Football Training" || events[1].Name != "Dinner" {
			t.Errorf("Unexpected order: %s, %s", events[0].Name, events[1].Name)
		}
	})
}

func TestReplaceEvent_CommaOnlyRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	event := &models.Event{Name: "Movie Night", Date: "20-10-2021", Time: "2000", Venue: "Lounge", Capacity: 5}
	if err := store.CreateEvent(ctx, event); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	alex := testPerson("Alex Yeoh", "E417", true)
	bernice := testPerson("Bernice Yu", "A213", false)
	legacy := alex.String() + "," + bernice.String()
	if _, err := store.db.ExecContext(ctx,
		`UPDATE events SET residents_display = ?, residents_storage = ? WHERE id = ?`,
		"Alex Yeoh,Bernice Yu", legacy, event.ID,
	); err != nil {
		t.Fatalf("failed to seed row: %v", err)
	}

	old, err := store.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if old.Residents.Len() != 2 {
		t.Fatalf("Expected 2 residents, got %d", old.Residents.Len())
	}

	david := testPerson("David Li", "C112", true)
	updated := old.WithResidents(old.Residents.Combine([]resident.Record{david.Record()}))
	if err := store.ReplaceEvent(ctx, old, &updated); err != nil {
		t.Fatalf("ReplaceEvent failed: %v", err)
	}

	got, err := store.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if want := "Alex Yeoh,Bernice Yu, David Li"; got.Residents.Display() != want {
		t.Errorf("Display mismatch: got %q, want %q", got.Residents.Display(), want)
	}
	if want := legacy + ", " + david.String(); got.Residents.Storage() != want {
		t.Errorf("Storage mismatch: got %q, want %q", got.Residents.Storage(), want)
	}
	if got.Residents.Len() != 3 {
		t.Errorf("Expected 3 residents, got %d", got.Residents.Len())
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("warden@example.com", "Warden", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, "warden@example.com")
	if err != nil || got == nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, user.ID)
	}

	missing, err := store.GetUserByID(ctx, "nope")
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown user")
	}
}
