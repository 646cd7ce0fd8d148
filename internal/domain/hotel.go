package domain

import "time"

// Hotel groups a set of bookable rooms
type Hotel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Rooms is populated on joined reads
	Rooms []Room `json:"rooms,omitempty"`
}

// Room belongs to one hotel. Capacity is fixed at creation and bounds
// the number of simultaneous bookings referencing the room.
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   string    `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
