package domain

import "time"

// Booking is a user's room reservation. At most one booking exists per
// user, and at most Room.Capacity bookings reference the same room.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Room is populated on joined reads
	Room *Room `json:"room,omitempty"`
}

// BelongsToUser checks if the booking belongs to the specified user
func (b *Booking) BelongsToUser(userID string) bool {
	return b.UserID == userID
}

// BookingEventType identifies a booking lifecycle event
type BookingEventType string

const (
	BookingEventCreated BookingEventType = "booking.created"
	BookingEventUpdated BookingEventType = "booking.updated"
)

// BookingEvent is the integration event published when a booking changes
type BookingEvent struct {
	EventID   string           `json:"event_id"`
	EventType BookingEventType `json:"event_type"`
	BookingID string           `json:"booking_id"`
	UserID    string           `json:"user_id"`
	RoomID    string           `json:"room_id"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewBookingEvent builds an event for the given booking
func NewBookingEvent(eventType BookingEventType, booking *Booking, eventID string) *BookingEvent {
	return &BookingEvent{
		EventID:   eventID,
		EventType: eventType,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		RoomID:    booking.RoomID,
		Timestamp: time.Now(),
	}
}

// Key returns the partition key for the event
func (e *BookingEvent) Key() string {
	return e.BookingID
}
