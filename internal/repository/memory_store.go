package repository

import (
	"sync"

	"github.com/shaman87/drivent/internal/domain"
)

// MemoryStore holds all entities behind a single mutex so the memory
// repositories can run cross-entity check-then-act sequences atomically.
// This is useful for testing and development.
type MemoryStore struct {
	mu          sync.RWMutex
	enrollments map[string]*domain.Enrollment
	ticketTypes map[string]*domain.TicketType
	tickets     map[string]*domain.Ticket
	hotels      map[string]*domain.Hotel
	rooms       map[string]*domain.Room
	bookings    map[string]*domain.Booking
	payments    map[string]*domain.Payment
}

// NewMemoryStore creates a new empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		enrollments: make(map[string]*domain.Enrollment),
		ticketTypes: make(map[string]*domain.TicketType),
		tickets:     make(map[string]*domain.Ticket),
		hotels:      make(map[string]*domain.Hotel),
		rooms:       make(map[string]*domain.Room),
		bookings:    make(map[string]*domain.Booking),
		payments:    make(map[string]*domain.Payment),
	}
}

// PutEnrollment stores an enrollment
func (s *MemoryStore) PutEnrollment(e *domain.Enrollment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *e
	s.enrollments[e.ID] = &clone
}

// PutTicketType stores a ticket type
func (s *MemoryStore) PutTicketType(tt *domain.TicketType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *tt
	s.ticketTypes[tt.ID] = &clone
}

// PutTicket stores a ticket
func (s *MemoryStore) PutTicket(t *domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *t
	clone.TicketType = nil
	s.tickets[t.ID] = &clone
}

// PutHotel stores a hotel
func (s *MemoryStore) PutHotel(h *domain.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *h
	clone.Rooms = nil
	s.hotels[h.ID] = &clone
}

// PutRoom stores a room
func (s *MemoryStore) PutRoom(r *domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *r
	s.rooms[r.ID] = &clone
}

// PutBooking stores a booking
func (s *MemoryStore) PutBooking(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *b
	clone.Room = nil
	s.bookings[b.ID] = &clone
}

// PutPayment stores a payment
func (s *MemoryStore) PutPayment(p *domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *p
	s.payments[p.ID] = &clone
}

// joinedTicket clones a ticket and attaches its type. Caller must hold the lock.
func (s *MemoryStore) joinedTicket(t *domain.Ticket) *domain.Ticket {
	clone := *t
	if tt, ok := s.ticketTypes[t.TicketTypeID]; ok {
		ttClone := *tt
		clone.TicketType = &ttClone
	}
	return &clone
}

// joinedBooking clones a booking and attaches its room. Caller must hold the lock.
func (s *MemoryStore) joinedBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	if room, ok := s.rooms[b.RoomID]; ok {
		roomClone := *room
		clone.Room = &roomClone
	}
	return &clone
}

// countRoom counts bookings referencing a room. Caller must hold the lock.
func (s *MemoryStore) countRoom(roomID string) int {
	count := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count
}
