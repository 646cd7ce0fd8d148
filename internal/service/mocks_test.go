package service

import (
	"context"

	"github.com/shaman87/drivent/internal/domain"
)

// MockEnrollmentRepository is a mock implementation of EnrollmentRepository
type MockEnrollmentRepository struct {
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Enrollment, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.Enrollment, error)
}

func (m *MockEnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrEnrollmentNotFound
}

func (m *MockEnrollmentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Enrollment, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrEnrollmentNotFound
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	ListTypesFunc   func(ctx context.Context) ([]*domain.TicketType, error)
	GetTypeByIDFunc func(ctx context.Context, id string) (*domain.TicketType, error)
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Ticket, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.Ticket, error)
	CreateFunc      func(ctx context.Context, ticket *domain.Ticket) error
}

func (m *MockTicketRepository) ListTypes(ctx context.Context) ([]*domain.TicketType, error) {
	if m.ListTypesFunc != nil {
		return m.ListTypesFunc(ctx)
	}
	return []*domain.TicketType{}, nil
}

func (m *MockTicketRepository) GetTypeByID(ctx context.Context, id string) (*domain.TicketType, error) {
	if m.GetTypeByIDFunc != nil {
		return m.GetTypeByIDFunc(ctx, id)
	}
	return nil, domain.ErrTicketTypeNotFound
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrTicketNotFound
}

func (m *MockTicketRepository) GetByUserID(ctx context.Context, userID string) (*domain.Ticket, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrTicketNotFound
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ticket)
	}
	return nil
}

// MockHotelRepository is a mock implementation of HotelRepository
type MockHotelRepository struct {
	ListFunc         func(ctx context.Context) ([]*domain.Hotel, error)
	GetWithRoomsFunc func(ctx context.Context, hotelID string) (*domain.Hotel, error)
	GetRoomFunc      func(ctx context.Context, roomID string) (*domain.Room, error)
}

func (m *MockHotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Hotel{}, nil
}

func (m *MockHotelRepository) GetWithRooms(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	if m.GetWithRoomsFunc != nil {
		return m.GetWithRoomsFunc(ctx, hotelID)
	}
	return nil, domain.ErrHotelNotFound
}

func (m *MockHotelRepository) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	if m.GetRoomFunc != nil {
		return m.GetRoomFunc(ctx, roomID)
	}
	return nil, domain.ErrRoomNotFound
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserIDFunc   func(ctx context.Context, userID string) (*domain.Booking, error)
	CountByRoomIDFunc func(ctx context.Context, roomID string) (int, error)
	CreateInRoomFunc  func(ctx context.Context, booking *domain.Booking) error
	MoveToRoomFunc    func(ctx context.Context, bookingID, roomID string) (*domain.Booking, error)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID string) (*domain.Booking, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) CountByRoomID(ctx context.Context, roomID string) (int, error) {
	if m.CountByRoomIDFunc != nil {
		return m.CountByRoomIDFunc(ctx, roomID)
	}
	return 0, nil
}

func (m *MockBookingRepository) CreateInRoom(ctx context.Context, booking *domain.Booking) error {
	if m.CreateInRoomFunc != nil {
		return m.CreateInRoomFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) MoveToRoom(ctx context.Context, bookingID, roomID string) (*domain.Booking, error) {
	if m.MoveToRoomFunc != nil {
		return m.MoveToRoomFunc(ctx, bookingID, roomID)
	}
	return nil, domain.ErrBookingNotFound
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	GetByTicketIDFunc func(ctx context.Context, ticketID string) (*domain.Payment, error)
}

func (m *MockPaymentRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.Payment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, domain.ErrPaymentNotFound
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	CreatedCalls []*domain.Booking
	UpdatedCalls []*domain.Booking
	PublishErr   error
}

func (m *MockEventPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	m.CreatedCalls = append(m.CreatedCalls, booking)
	return m.PublishErr
}

func (m *MockEventPublisher) PublishBookingUpdated(ctx context.Context, booking *domain.Booking) error {
	m.UpdatedCalls = append(m.UpdatedCalls, booking)
	return m.PublishErr
}

func (m *MockEventPublisher) Close() error {
	return nil
}
