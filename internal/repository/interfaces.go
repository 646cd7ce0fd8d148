package repository

import (
	"context"

	"github.com/shaman87/drivent/internal/domain"
)

// EnrollmentRepository defines data access for enrollments
type EnrollmentRepository interface {
	// GetByID retrieves an enrollment by its ID
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)

	// GetByUserID retrieves the enrollment of a user
	GetByUserID(ctx context.Context, userID string) (*domain.Enrollment, error)
}

// TicketRepository defines data access for tickets and ticket types
type TicketRepository interface {
	// ListTypes retrieves all ticket types
	ListTypes(ctx context.Context) ([]*domain.TicketType, error)

	// GetTypeByID retrieves a ticket type by its ID
	GetTypeByID(ctx context.Context, id string) (*domain.TicketType, error)

	// GetByID retrieves a ticket by its ID, joined with its type
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)

	// GetByUserID retrieves the user's single ticket, joined with its type
	GetByUserID(ctx context.Context, userID string) (*domain.Ticket, error)

	// Create persists a new ticket
	Create(ctx context.Context, ticket *domain.Ticket) error
}

// HotelRepository defines data access for hotels and rooms
type HotelRepository interface {
	// List retrieves all hotels
	List(ctx context.Context) ([]*domain.Hotel, error)

	// GetWithRooms retrieves a hotel by ID with its rooms
	GetWithRooms(ctx context.Context, hotelID string) (*domain.Hotel, error)

	// GetRoom retrieves a room by its ID
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
}

// BookingRepository defines data access for bookings.
//
// CreateInRoom and MoveToRoom run their room checks and the write inside
// a single transaction against the store: the target room row is locked,
// occupancy and uniqueness are verified against that snapshot, and the
// write happens only if the checks still hold. The store's transaction is
// the sole concurrency boundary.
type BookingRepository interface {
	// GetByID retrieves a booking by its ID, joined with its room
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetByUserID retrieves the user's booking, joined with its room
	GetByUserID(ctx context.Context, userID string) (*domain.Booking, error)

	// CountByRoomID counts the bookings referencing a room
	CountByRoomID(ctx context.Context, roomID string) (int, error)

	// CreateInRoom atomically verifies, in order, that the target room
	// exists (ErrRoomNotFound), the user has no booking
	// (ErrBookingAlreadyExists) and the room is under capacity
	// (ErrRoomCapacityReached), then inserts the booking.
	CreateInRoom(ctx context.Context, booking *domain.Booking) error

	// MoveToRoom atomically verifies, in order, that the target room
	// exists (ErrRoomNotFound), differs from the booking's current room
	// (ErrSameRoom) and is under capacity (ErrRoomCapacityReached), then
	// reassigns the booking and returns it.
	MoveToRoom(ctx context.Context, bookingID, roomID string) (*domain.Booking, error)
}

// PaymentRepository defines data access for payments
type PaymentRepository interface {
	// GetByTicketID retrieves the payment of a ticket
	GetByTicketID(ctx context.Context, ticketID string) (*domain.Payment, error)
}
