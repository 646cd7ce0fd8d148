package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
	"github.com/shaman87/drivent/internal/repository"
	"github.com/shaman87/drivent/pkg/logger"
	"go.uber.org/zap"
)

// TicketService defines the interface for ticket business logic
type TicketService interface {
	// ListTypes retrieves all ticket types
	ListTypes(ctx context.Context) ([]*dto.TicketTypeView, error)

	// GetUserTicket retrieves the authenticated user's ticket
	GetUserTicket(ctx context.Context, userID string) (*dto.TicketView, error)

	// CreateTicket reserves a ticket of the given type for the user
	CreateTicket(ctx context.Context, userID string, req *dto.CreateTicketRequest) (*dto.TicketView, error)
}

// ticketService implements TicketService
type ticketService struct {
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
) TicketService {
	return &ticketService{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

// ListTypes retrieves all ticket types
func (s *ticketService) ListTypes(ctx context.Context) ([]*dto.TicketTypeView, error) {
	types, err := s.ticketRepo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.TicketTypeView, 0, len(types))
	for _, tt := range types {
		view := dto.NewTicketTypeView(tt)
		views = append(views, &view)
	}

	return views, nil
}

// GetUserTicket retrieves the authenticated user's ticket. The user must
// be enrolled and hold a ticket.
func (s *ticketService) GetUserTicket(ctx context.Context, userID string) (*dto.TicketView, error) {
	if _, err := s.enrollmentRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewTicketView(ticket), nil
}

// CreateTicket reserves a ticket of the given type for the user. The user
// must be enrolled and the type must exist. The new ticket starts RESERVED.
func (s *ticketService) CreateTicket(ctx context.Context, userID string, req *dto.CreateTicketRequest) (*dto.TicketView, error) {
	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ticketType, err := s.ticketRepo.GetTypeByID(ctx, req.TicketTypeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := &domain.Ticket{
		ID:           uuid.New().String(),
		EnrollmentID: enrollment.ID,
		TicketTypeID: ticketType.ID,
		Status:       domain.TicketStatusReserved,
		CreatedAt:    now,
		UpdatedAt:    now,
		TicketType:   ticketType,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	logger.Get().Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("user_id", userID),
		zap.String("ticket_type_id", ticketType.ID),
	)

	return dto.NewTicketView(ticket), nil
}
