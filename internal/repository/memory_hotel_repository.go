package repository

import (
	"context"
	"sort"

	"github.com/shaman87/drivent/internal/domain"
)

// MemoryHotelRepository implements HotelRepository using in-memory storage
type MemoryHotelRepository struct {
	store *MemoryStore
}

// NewMemoryHotelRepository creates a new in-memory hotel repository
func NewMemoryHotelRepository(store *MemoryStore) *MemoryHotelRepository {
	return &MemoryHotelRepository{store: store}
}

var _ HotelRepository = (*MemoryHotelRepository)(nil)

// List retrieves all hotels
func (r *MemoryHotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var hotels []*domain.Hotel
	for _, hotel := range r.store.hotels {
		clone := *hotel
		hotels = append(hotels, &clone)
	}

	sort.Slice(hotels, func(i, j int) bool {
		return hotels[i].CreatedAt.Before(hotels[j].CreatedAt)
	})

	return hotels, nil
}

// GetWithRooms retrieves a hotel by ID with its rooms
func (r *MemoryHotelRepository) GetWithRooms(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	hotel, exists := r.store.hotels[hotelID]
	if !exists {
		return nil, domain.ErrHotelNotFound
	}

	clone := *hotel
	for _, room := range r.store.rooms {
		if room.HotelID == hotelID {
			clone.Rooms = append(clone.Rooms, *room)
		}
	}

	sort.Slice(clone.Rooms, func(i, j int) bool {
		return clone.Rooms[i].Name < clone.Rooms[j].Name
	})

	return &clone, nil
}

// GetRoom retrieves a room by its ID
func (r *MemoryHotelRepository) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	room, exists := r.store.rooms[roomID]
	if !exists {
		return nil, domain.ErrRoomNotFound
	}

	clone := *room
	return &clone, nil
}
