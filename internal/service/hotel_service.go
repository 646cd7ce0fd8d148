package service

import (
	"context"

	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
	"github.com/shaman87/drivent/internal/repository"
)

// HotelService defines the interface for hotel read flows
type HotelService interface {
	// ListHotels retrieves all hotels visible to the user
	ListHotels(ctx context.Context, userID string) ([]*dto.HotelView, error)

	// GetHotelRooms retrieves a hotel and its rooms
	GetHotelRooms(ctx context.Context, userID, hotelID string) (*dto.HotelWithRoomsView, error)
}

// hotelService implements HotelService
type hotelService struct {
	ticketRepo repository.TicketRepository
	hotelRepo  repository.HotelRepository
}

// NewHotelService creates a new hotel service
func NewHotelService(
	ticketRepo repository.TicketRepository,
	hotelRepo repository.HotelRepository,
) HotelService {
	return &hotelService{
		ticketRepo: ticketRepo,
		hotelRepo:  hotelRepo,
	}
}

// ListHotels retrieves all hotels once the user's ticket clears the
// eligibility gate
func (s *hotelService) ListHotels(ctx context.Context, userID string) ([]*dto.HotelView, error) {
	if _, err := s.resolveEligibleTicket(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.HotelView, 0, len(hotels))
	for _, hotel := range hotels {
		views = append(views, dto.NewHotelView(hotel))
	}

	return views, nil
}

// GetHotelRooms retrieves a hotel and its rooms once the user's ticket
// clears the eligibility gate
func (s *hotelService) GetHotelRooms(ctx context.Context, userID, hotelID string) (*dto.HotelWithRoomsView, error) {
	if _, err := s.resolveEligibleTicket(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetWithRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	return dto.NewHotelWithRoomsView(hotel), nil
}

// resolveEligibleTicket fetches the user's ticket and applies the read-path
// gate. The checks run in a fixed order: ticket existence, then category,
// then payment state. A remote or hotel-less category is reported even when
// the ticket is also unpaid.
func (s *hotelService) resolveEligibleTicket(ctx context.Context, userID string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !ticket.GrantsHotelAccess() {
		return nil, domain.ErrHotelAccessForbidden
	}

	if !ticket.IsPaid() {
		return nil, domain.ErrTicketNotPaid
	}

	return ticket, nil
}
