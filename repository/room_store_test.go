package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontdesk/models"
)

func tempStore(t *testing.T) (*RoomStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rooms.json")
	return NewRoomStore(path), path
}

func TestLoad_MissingFile(t *testing.T) {
	store, _ := tempStore(t)

	rooms := store.Load()

	assert.Empty(t, rooms)
}

func TestLoad_CorruptFile(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	rooms := store.Load()

	assert.Empty(t, rooms)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, path := tempStore(t)

	standard := models.NewRoom(models.TierStandard, "101", 100000, nil)
	deluxe := models.NewRoom(models.TierDeluxe, "201", 150000, []string{"Balcony"})
	suite := models.NewRoom(models.TierSuite, "301", 250000, nil)
	require.True(t, deluxe.Book(3, "Alice"))
	require.True(t, suite.Book(2, "Bob"))

	rooms := []*models.Room{standard, deluxe, suite}
	require.NoError(t, store.Save(rooms))

	loaded := store.Load()
	require.Len(t, loaded, 3)

	// Saving the loaded registry must reproduce the document byte for
	// byte; that proves every field survived, timestamp included.
	second := NewRoomStore(filepath.Join(t.TempDir(), "rooms.json"))
	require.NoError(t, second.Save(loaded))

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	resaved, err := os.ReadFile(second.path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(resaved))

	got := loaded[1]
	assert.Equal(t, "201", got.RoomNumber)
	assert.Equal(t, models.TierDeluxe, got.RoomType)
	assert.Equal(t, 150000.0, got.Price)
	assert.Equal(t, []string{"TV", "AC", "WiFi", "Mini Bar", "City View", "Balcony"}, got.Amenities)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, 3, got.Nights)
	assert.Equal(t, "Alice", got.GuestName)
	require.NotNil(t, got.CheckinTime)
	assert.Equal(t, deluxe.CheckinTime.String(), got.CheckinTime.String())
}

func TestSave_OverwritesPriorContent(t *testing.T) {
	store, _ := tempStore(t)

	require.NoError(t, store.Save([]*models.Room{
		models.NewRoom(models.TierStandard, "101", 100000, nil),
		models.NewRoom(models.TierStandard, "102", 100000, nil),
	}))
	require.NoError(t, store.Save([]*models.Room{
		models.NewRoom(models.TierSuite, "301", 250000, nil),
	}))

	rooms := store.Load()
	require.Len(t, rooms, 1)
	assert.Equal(t, "301", rooms[0].RoomNumber)
}

func TestSave_EmptyRegistry(t *testing.T) {
	store, _ := tempStore(t)

	require.NoError(t, store.Save([]*models.Room{}))

	assert.Empty(t, store.Load())
}
