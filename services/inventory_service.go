package services

import (
	"sync"

	"hotel-frontdesk/models"
	"hotel-frontdesk/repository"
)

// InventoryService owns the in-memory room registry for the lifetime of
// the process. It is loaded once at startup and flushed at shutdown.
//
// gin serves requests concurrently, so every access goes through one
// coarse RWMutex; the domain never needs anything finer.
type InventoryService struct {
	mu    sync.RWMutex
	rooms []*models.Room
	store *repository.RoomStore
}

func NewInventoryService(store *repository.RoomStore) *InventoryService {
	return &InventoryService{store: store}
}

// Load replaces the registry with the persisted document.
func (s *InventoryService) Load() {
	rooms := s.store.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = rooms
}

// Save flushes the registry to disk.
func (s *InventoryService) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Save(s.rooms)
}

// AddRoom appends a new room. Duplicate room numbers are not rejected;
// lookup returns the first match.
func (s *InventoryService) AddRoom(tier models.Tier, number string, price float64, extraAmenities []string) *models.Room {
	room := models.NewRoom(tier, number, price, extraAmenities)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, room)
	return room.Clone()
}

// RemoveRoom drops every room with the given number. Removing a number
// that does not exist is not an error.
func (s *InventoryService) RemoveRoom(number string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rooms[:0]
	removed := 0
	for _, room := range s.rooms {
		if room.RoomNumber == number {
			removed++
			continue
		}
		kept = append(kept, room)
	}
	s.rooms = kept
	return removed
}

// GetRoomByNumber scans for the first room with the given number.
// Room numbers are canonically strings and compared with exact
// equality: "007" and "7" are distinct rooms.
func (s *InventoryService) GetRoomByNumber(number string) (*models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if room := s.findLocked(number); room != nil {
		return room.Clone(), true
	}
	return nil, false
}

// Rooms returns a snapshot of the whole registry in insertion order.
func (s *InventoryService) Rooms() []*models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room.Clone())
	}
	return out
}

// AvailableRooms returns available rooms, optionally restricted to one
// tier. An empty tier means no filter.
func (s *InventoryService) AvailableRooms(tier models.Tier) []*models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Room{}
	for _, room := range s.rooms {
		if !room.IsAvailable {
			continue
		}
		if tier != "" && room.RoomType != tier {
			continue
		}
		out = append(out, room.Clone())
	}
	return out
}

// Statistics computes the aggregate occupancy snapshot. Pure, O(n).
// An empty registry reports a zero occupancy rate, not a division error.
func (s *InventoryService) Statistics() models.BookingStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.BookingStatistics{TotalRooms: len(s.rooms)}
	for _, room := range s.rooms {
		if room.IsAvailable {
			continue
		}
		stats.OccupiedRooms++
		stats.TotalRevenue += room.BasePrice()
	}
	stats.AvailableRooms = stats.TotalRooms - stats.OccupiedRooms
	if stats.TotalRooms > 0 {
		stats.OccupancyRate = float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100
	}
	return stats
}

// withRoom runs fn against the live room under the write lock. Used by
// the booking service so transitions and their reads stay atomic.
func (s *InventoryService) withRoom(number string, fn func(*models.Room) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.findLocked(number)
	if room == nil {
		return ErrRoomNotFound
	}
	return fn(room)
}

func (s *InventoryService) findLocked(number string) *models.Room {
	for _, room := range s.rooms {
		if room.RoomNumber == number {
			return room
		}
	}
	return nil
}
