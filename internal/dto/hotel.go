package dto

import "github.com/shaman87/drivent/internal/domain"

// HotelView is the externally visible shape of a hotel
type HotelView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// HotelWithRoomsView is a hotel joined with its rooms
type HotelWithRoomsView struct {
	HotelView
	Rooms []RoomView `json:"rooms"`
}

// NewHotelView projects a hotel
func NewHotelView(hotel *domain.Hotel) *HotelView {
	return &HotelView{
		ID:    hotel.ID,
		Name:  hotel.Name,
		Image: hotel.Image,
	}
}

// NewHotelWithRoomsView projects a hotel and its rooms
func NewHotelWithRoomsView(hotel *domain.Hotel) *HotelWithRoomsView {
	view := &HotelWithRoomsView{
		HotelView: *NewHotelView(hotel),
		Rooms:     make([]RoomView, 0, len(hotel.Rooms)),
	}
	for i := range hotel.Rooms {
		view.Rooms = append(view.Rooms, NewRoomView(&hotel.Rooms[i]))
	}
	return view
}
