package dto

import "github.com/shaman87/drivent/internal/domain"

// CreateBookingRequest is the payload to create a booking
type CreateBookingRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

// ChangeRoomRequest is the payload to move a booking to another room
type ChangeRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

// BookingIDResponse carries only the booking identifier
type BookingIDResponse struct {
	BookingID string `json:"bookingId"`
}

// RoomView is the externally visible shape of a room
type RoomView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  string `json:"hotel_id"`
}

// BookingView is the externally visible shape of a booking. Foreign keys
// and timestamps are stripped from the booking, timestamps from the room.
type BookingView struct {
	ID   string   `json:"id"`
	Room RoomView `json:"room"`
}

// NewRoomView projects a room
func NewRoomView(room *domain.Room) RoomView {
	return RoomView{
		ID:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
		HotelID:  room.HotelID,
	}
}

// NewBookingView projects a booking and its room
func NewBookingView(booking *domain.Booking) *BookingView {
	view := &BookingView{ID: booking.ID}
	if booking.Room != nil {
		view.Room = NewRoomView(booking.Room)
	}
	return view
}
