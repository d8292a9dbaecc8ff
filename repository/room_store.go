package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"hotel-frontdesk/models"
)

// RoomStore persists the room registry as a JSON array at a fixed path.
// The whole document is rewritten on every save.
type RoomStore struct {
	path string
}

func NewRoomStore(path string) *RoomStore {
	return &RoomStore{path: path}
}

// Load reads the rooms document. A missing or malformed file yields an
// empty registry rather than an error: the front desk must come up even
// when the data file is gone or damaged.
func (s *RoomStore) Load() []*models.Room {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  Could not read %s, starting with an empty registry: %v", s.path, err)
		}
		return []*models.Room{}
	}

	var rooms []*models.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		log.Printf("⚠️  Corrupt rooms document %s, starting with an empty registry: %v", s.path, err)
		return []*models.Room{}
	}
	return rooms
}

// Save overwrites the rooms document with the full attribute set of
// every room. The write goes to a temp file first and is renamed over
// the target so a crash mid-write cannot leave a truncated document.
func (s *RoomStore) Save(rooms []*models.Room) error {
	data, err := json.MarshalIndent(rooms, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal rooms: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write rooms: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
