package repository

import (
	"context"
	"time"

	"github.com/shaman87/drivent/internal/domain"
)

// MemoryBookingRepository implements BookingRepository using in-memory storage.
// The store mutex covers the whole check-then-act sequence of CreateInRoom
// and MoveToRoom, mirroring the row lock the Postgres implementation takes.
type MemoryBookingRepository struct {
	store *MemoryStore
}

// NewMemoryBookingRepository creates a new in-memory booking repository
func NewMemoryBookingRepository(store *MemoryStore) *MemoryBookingRepository {
	return &MemoryBookingRepository{store: store}
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)

// GetByID retrieves a booking by its ID, joined with its room
func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, exists := r.store.bookings[id]
	if !exists {
		return nil, domain.ErrBookingNotFound
	}

	return r.store.joinedBooking(booking), nil
}

// GetByUserID retrieves the user's booking, joined with its room
func (r *MemoryBookingRepository) GetByUserID(ctx context.Context, userID string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, booking := range r.store.bookings {
		if booking.UserID == userID {
			return r.store.joinedBooking(booking), nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

// CountByRoomID counts the bookings referencing a room
func (r *MemoryBookingRepository) CountByRoomID(ctx context.Context, roomID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.countRoom(roomID), nil
}

// CreateInRoom inserts a booking after running the room checks under the
// store lock
func (r *MemoryBookingRepository) CreateInRoom(ctx context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	room, exists := r.store.rooms[booking.RoomID]
	if !exists {
		return domain.ErrRoomNotFound
	}

	for _, existing := range r.store.bookings {
		if existing.UserID == booking.UserID {
			return domain.ErrBookingAlreadyExists
		}
	}

	if r.store.countRoom(booking.RoomID) >= room.Capacity {
		return domain.ErrRoomCapacityReached
	}

	clone := *booking
	clone.Room = nil
	r.store.bookings[booking.ID] = &clone

	return nil
}

// MoveToRoom reassigns a booking to another room after running the room
// checks under the store lock
func (r *MemoryBookingRepository) MoveToRoom(ctx context.Context, bookingID, roomID string) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	room, exists := r.store.rooms[roomID]
	if !exists {
		return nil, domain.ErrRoomNotFound
	}

	booking, exists := r.store.bookings[bookingID]
	if !exists {
		return nil, domain.ErrBookingNotFound
	}

	if booking.RoomID == roomID {
		return nil, domain.ErrSameRoom
	}

	if r.store.countRoom(roomID) >= room.Capacity {
		return nil, domain.ErrRoomCapacityReached
	}

	booking.RoomID = roomID
	booking.UpdatedAt = time.Now()

	clone := *booking
	return &clone, nil
}
