package membership

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
	"github.com/mmynk/safeforhall/internal/storage/sqlite"
)

func person(name, room string, vaccinated bool) models.Person {
	return models.Person{
		Name:       name,
		Room:       room,
		Phone:      "94351253",
		Email:      "resident@example.com",
		Vaccinated: vaccinated,
		Faculty:    "SOC",
	}
}

var (
	alice = person("Alice Pauline", "A100", true)
	bob   = person("Bob Choo", "B200", false)
	carl  = person("Carl Kurz", "C300", true)
)

func setupHall(t *testing.T, capacity int) (*sqlite.SQLiteStore, models.Event) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "hall.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	for _, p := range []models.Person{alice, bob, carl} {
		p := p
		require.NoError(t, store.CreatePerson(ctx, &p))
	}

	event := models.Event{Name: "Movie Night", Date: "20-10-2021", Time: "2000", Venue: "Lounge", Capacity: capacity}
	require.NoError(t, store.CreateEvent(ctx, &event))
	return store, event
}

func include(t *testing.T, store *sqlite.SQLiteStore, args string) (*Result, error) {
	t.Helper()
	cmd, err := ParseInclude(args)
	require.NoError(t, err)
	return cmd.Execute(context.Background(), store)
}

func TestParseInclude(t *testing.T) {
	cmd, err := ParseInclude("1 r/A101, A102, A103")
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Index)
	assert.Equal(t, resident.KindRoom, cmd.Residents.Kind)
	assert.Equal(t, 3, cmd.Residents.Len())

	cmd, err = ParseInclude("2 r/Alice Tan, Bob Lee")
	require.NoError(t, err)
	assert.Equal(t, 2, cmd.Index)
	assert.Equal(t, resident.KindName, cmd.Residents.Kind)

	_, err = ParseInclude("r/A101")
	assert.ErrorIs(t, err, ErrInvalidCommand)
	_, err = ParseInclude("0 r/A101")
	assert.ErrorIs(t, err, ErrInvalidCommand)
	_, err = ParseInclude("1 A101")
	assert.ErrorIs(t, err, ErrInvalidCommand)
	_, err = ParseInclude("1 r/A101 A102")
	assert.ErrorIs(t, err, resident.ErrFormat)
	_, err = ParseInclude("1 r/Alice Tan, A102")
	assert.ErrorIs(t, err, resident.ErrAmbiguousMix)
}

func TestIncludeByRoom(t *testing.T) {
	store, event := setupHall(t, 5)

	res, err := include(t, store, "1 r/a100, B200")
	require.NoError(t, err)
	assert.Equal(t, "Alice Pauline, Bob Choo added to event Movie Night", res.Message)

	saved, err := store.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Pauline, Bob Choo", saved.Residents.Display())
	assert.Equal(t, alice.String()+", "+bob.String(), saved.Residents.Storage())
	assert.Equal(t, 1, saved.Residents.NumUnvaccinated())
}

func TestIncludeAppendsToExisting(t *testing.T) {
	store, event := setupHall(t, 5)

	_, err := include(t, store, "1 r/Carl Kurz")
	require.NoError(t, err)
	_, err = include(t, store, "1 r/Alice Pauline, Bob Choo")
	require.NoError(t, err)

	saved, err := store.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carl Kurz, Alice Pauline, Bob Choo", saved.Residents.Display())
	assert.Equal(t, 3, saved.Residents.Len())
}

func TestIncludeUnknownResidentsAreSkipped(t *testing.T) {
	store, _ := setupHall(t, 5)

	res, err := include(t, store, "1 r/A100, Z999")
	require.NoError(t, err)
	require.Len(t, res.Added, 1)
	assert.Equal(t, alice.Name, res.Added[0].Name)

	_, err = include(t, store, "1 r/Z998, Z999")
	var empty *EmptyResolutionError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "no person with this information 'Z998, Z999' could be found", err.Error())
}

func TestIncludeIndexOutOfRange(t *testing.T) {
	store, _ := setupHall(t, 5)

	_, err := include(t, store, "2 r/A100")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIncludeDuplicates(t *testing.T) {
	store, event := setupHall(t, 5)
	_, err := include(t, store, "1 r/A100, B200")
	require.NoError(t, err)

	_, err = include(t, store, "1 r/A100")
	var dup *DuplicateMemberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"Alice Pauline"}, dup.Names)
	assert.Equal(t, "Alice Pauline is already in this event", err.Error())

	_, err = include(t, store, "1 r/A100, B200, C300")
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Alice Pauline, Bob Choo are already in this event", err.Error())

	saved, err := store.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Residents.Len(), "rejected include must not change the event")
}

func TestIncludeCapacity(t *testing.T) {
	t.Run("exactly at capacity succeeds", func(t *testing.T) {
		store, _ := setupHall(t, 2)
		_, err := include(t, store, "1 r/A100")
		require.NoError(t, err)
		_, err = include(t, store, "1 r/B200")
		require.NoError(t, err)
	})

	t.Run("one over capacity fails and leaves event untouched", func(t *testing.T) {
		store, event := setupHall(t, 2)
		_, err := include(t, store, "1 r/A100")
		require.NoError(t, err)

		_, err = include(t, store, "1 r/B200, C300")
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		saved, err := store.GetEvent(context.Background(), event.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Pauline", saved.Residents.Display())
	})
}

func TestAdmitDoesNotModifyEvent(t *testing.T) {
	event := models.Event{Name: "Talk", Capacity: 3}
	event = event.WithResidents(resident.FromRecords([]resident.Record{carl.Record()}))

	updated, err := Admit(event, []models.Person{alice, bob})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Residents.Len())
	assert.Equal(t, 1, event.Residents.Len())
}

type failingModel struct {
	Model
	replaced bool
}

func (m *failingModel) ReplaceEvent(ctx context.Context, old, updated *models.Event) error {
	m.replaced = true
	return errors.New("disk full")
}

func TestIncludeNoReplaceOnRejection(t *testing.T) {
	store, _ := setupHall(t, 1)
	model := &failingModel{Model: store}

	cmd, err := ParseInclude("1 r/A100, B200")
	require.NoError(t, err)
	_, err = cmd.Execute(context.Background(), model)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, model.replaced)

	cmd, err = ParseInclude("1 r/A100")
	require.NoError(t, err)
	_, err = cmd.Execute(context.Background(), model)
	assert.ErrorContains(t, err, "disk full")
	assert.True(t, model.replaced)
}
