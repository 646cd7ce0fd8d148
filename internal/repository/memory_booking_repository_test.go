package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shaman87/drivent/internal/domain"
)

func seedRoom(store *MemoryStore, roomID string, capacity int) {
	store.PutHotel(&domain.Hotel{ID: "hotel-001", Name: "Driven Resort"})
	store.PutRoom(&domain.Room{ID: roomID, Name: roomID, Capacity: capacity, HotelID: "hotel-001"})
}

func newBooking(id, userID, roomID string) *domain.Booking {
	now := time.Now()
	return &domain.Booking{ID: id, UserID: userID, RoomID: roomID, CreatedAt: now, UpdatedAt: now}
}

func TestMemoryBookingRepository_CreateInRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("room does not exist", func(t *testing.T) {
		repo := NewMemoryBookingRepository(NewMemoryStore())

		err := repo.CreateInRoom(ctx, newBooking("booking-001", "user-001", "missing-room"))
		if !errors.Is(err, domain.ErrRoomNotFound) {
			t.Errorf("CreateInRoom() error = %v, want %v", err, domain.ErrRoomNotFound)
		}
	})

	t.Run("user already has a booking in another room", func(t *testing.T) {
		store := NewMemoryStore()
		seedRoom(store, "room-001", 3)
		store.PutRoom(&domain.Room{ID: "room-002", Name: "102", Capacity: 3, HotelID: "hotel-001"})
		repo := NewMemoryBookingRepository(store)

		if err := repo.CreateInRoom(ctx, newBooking("booking-001", "user-001", "room-001")); err != nil {
			t.Fatalf("CreateInRoom() unexpected error = %v", err)
		}

		err := repo.CreateInRoom(ctx, newBooking("booking-002", "user-001", "room-002"))
		if !errors.Is(err, domain.ErrBookingAlreadyExists) {
			t.Errorf("CreateInRoom() error = %v, want %v", err, domain.ErrBookingAlreadyExists)
		}
	})

	t.Run("uniqueness beats capacity", func(t *testing.T) {
		store := NewMemoryStore()
		seedRoom(store, "room-001", 1)
		repo := NewMemoryBookingRepository(store)

		if err := repo.CreateInRoom(ctx, newBooking("booking-001", "user-001", "room-001")); err != nil {
			t.Fatalf("CreateInRoom() unexpected error = %v", err)
		}

		// The room is also full; the uniqueness failure is reported first
		err := repo.CreateInRoom(ctx, newBooking("booking-002", "user-001", "room-001"))
		if !errors.Is(err, domain.ErrBookingAlreadyExists) {
			t.Errorf("CreateInRoom() error = %v, want %v", err, domain.ErrBookingAlreadyExists)
		}
	})

	t.Run("room at capacity", func(t *testing.T) {
		store := NewMemoryStore()
		seedRoom(store, "room-001", 1)
		repo := NewMemoryBookingRepository(store)

		if err := repo.CreateInRoom(ctx, newBooking("booking-001", "user-001", "room-001")); err != nil {
			t.Fatalf("CreateInRoom() unexpected error = %v", err)
		}

		err := repo.CreateInRoom(ctx, newBooking("booking-002", "user-002", "room-001"))
		if !errors.Is(err, domain.ErrRoomCapacityReached) {
			t.Errorf("CreateInRoom() error = %v, want %v", err, domain.ErrRoomCapacityReached)
		}
	})
}

func TestMemoryBookingRepository_CreateInRoom_ConcurrentCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seedRoom(store, "room-001", 3)
	repo := NewMemoryBookingRepository(store)

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			booking := newBooking(
				fmt.Sprintf("booking-%03d", i),
				fmt.Sprintf("user-%03d", i),
				"room-001",
			)
			errs[i] = repo.CreateInRoom(ctx, booking)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, domain.ErrRoomCapacityReached) {
			t.Errorf("CreateInRoom() unexpected error = %v", err)
		}
	}
	if succeeded != 3 {
		t.Errorf("CreateInRoom() succeeded %d times, want 3", succeeded)
	}

	count, err := repo.CountByRoomID(ctx, "room-001")
	if err != nil {
		t.Fatalf("CountByRoomID() unexpected error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountByRoomID() = %d, want 3", count)
	}
}

func TestMemoryBookingRepository_CreateInRoom_ConcurrentSameUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seedRoom(store, "room-001", 10)
	for i := 0; i < 5; i++ {
		store.PutRoom(&domain.Room{
			ID:       fmt.Sprintf("room-%03d", i),
			Name:     fmt.Sprintf("10%d", i),
			Capacity: 10,
			HotelID:  "hotel-001",
		})
	}
	repo := NewMemoryBookingRepository(store)

	var wg sync.WaitGroup
	errs := make([]error, 5)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			booking := newBooking(
				fmt.Sprintf("booking-%03d", i),
				"user-001",
				fmt.Sprintf("room-%03d", i),
			)
			errs[i] = repo.CreateInRoom(ctx, booking)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, domain.ErrBookingAlreadyExists) {
			t.Errorf("CreateInRoom() unexpected error = %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("CreateInRoom() succeeded %d times for one user, want 1", succeeded)
	}
}

func TestMemoryBookingRepository_MoveToRoom(t *testing.T) {
	ctx := context.Background()

	setup := func(targetCapacity int) (*MemoryStore, *MemoryBookingRepository) {
		store := NewMemoryStore()
		seedRoom(store, "room-001", 3)
		store.PutRoom(&domain.Room{ID: "room-002", Name: "102", Capacity: targetCapacity, HotelID: "hotel-001"})
		store.PutBooking(newBooking("booking-001", "user-001", "room-001"))
		return store, NewMemoryBookingRepository(store)
	}

	t.Run("success frees the source room", func(t *testing.T) {
		_, repo := setup(3)

		moved, err := repo.MoveToRoom(ctx, "booking-001", "room-002")
		if err != nil {
			t.Fatalf("MoveToRoom() unexpected error = %v", err)
		}
		if moved.RoomID != "room-002" {
			t.Errorf("MoveToRoom() roomID = %q, want room-002", moved.RoomID)
		}

		sourceCount, _ := repo.CountByRoomID(ctx, "room-001")
		if sourceCount != 0 {
			t.Errorf("CountByRoomID(room-001) = %d, want 0", sourceCount)
		}
		targetCount, _ := repo.CountByRoomID(ctx, "room-002")
		if targetCount != 1 {
			t.Errorf("CountByRoomID(room-002) = %d, want 1", targetCount)
		}
	})

	t.Run("booking does not exist", func(t *testing.T) {
		_, repo := setup(3)

		_, err := repo.MoveToRoom(ctx, "missing-booking", "room-002")
		if !errors.Is(err, domain.ErrBookingNotFound) {
			t.Errorf("MoveToRoom() error = %v, want %v", err, domain.ErrBookingNotFound)
		}
	})

	t.Run("target room does not exist", func(t *testing.T) {
		_, repo := setup(3)

		_, err := repo.MoveToRoom(ctx, "booking-001", "missing-room")
		if !errors.Is(err, domain.ErrRoomNotFound) {
			t.Errorf("MoveToRoom() error = %v, want %v", err, domain.ErrRoomNotFound)
		}
	})

	t.Run("same room rejected", func(t *testing.T) {
		_, repo := setup(3)

		_, err := repo.MoveToRoom(ctx, "booking-001", "room-001")
		if !errors.Is(err, domain.ErrSameRoom) {
			t.Errorf("MoveToRoom() error = %v, want %v", err, domain.ErrSameRoom)
		}
	})

	t.Run("target room at capacity", func(t *testing.T) {
		store, repo := setup(1)
		store.PutBooking(newBooking("booking-002", "user-002", "room-002"))

		_, err := repo.MoveToRoom(ctx, "booking-001", "room-002")
		if !errors.Is(err, domain.ErrRoomCapacityReached) {
			t.Errorf("MoveToRoom() error = %v, want %v", err, domain.ErrRoomCapacityReached)
		}
	})
}

func TestMemoryBookingRepository_MoveToRoom_ConcurrentCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seedRoom(store, "room-target", 1)
	for i := 0; i < 4; i++ {
		roomID := fmt.Sprintf("room-%03d", i)
		store.PutRoom(&domain.Room{ID: roomID, Name: roomID, Capacity: 1, HotelID: "hotel-001"})
		store.PutBooking(newBooking(fmt.Sprintf("booking-%03d", i), fmt.Sprintf("user-%03d", i), roomID))
	}
	repo := NewMemoryBookingRepository(store)

	var wg sync.WaitGroup
	errs := make([]error, 4)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.MoveToRoom(ctx, fmt.Sprintf("booking-%03d", i), "room-target")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, domain.ErrRoomCapacityReached) {
			t.Errorf("MoveToRoom() unexpected error = %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("MoveToRoom() succeeded %d times, want 1", succeeded)
	}

	count, _ := repo.CountByRoomID(ctx, "room-target")
	if count != 1 {
		t.Errorf("CountByRoomID(room-target) = %d, want 1", count)
	}
}

func TestMemoryBookingRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seedRoom(store, "room-001", 3)
	store.PutBooking(newBooking("booking-001", "user-001", "room-001"))
	repo := NewMemoryBookingRepository(store)

	booking, err := repo.GetByUserID(ctx, "user-001")
	if err != nil {
		t.Fatalf("GetByUserID() unexpected error = %v", err)
	}
	if booking.ID != "booking-001" {
		t.Errorf("GetByUserID() id = %q, want booking-001", booking.ID)
	}
	if booking.Room == nil || booking.Room.ID != "room-001" {
		t.Errorf("GetByUserID() room = %+v, want joined room-001", booking.Room)
	}

	if _, err := repo.GetByUserID(ctx, "user-002"); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("GetByUserID() error = %v, want %v", err, domain.ErrBookingNotFound)
	}
}
