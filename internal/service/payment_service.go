package service

import (
	"context"

	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
	"github.com/shaman87/drivent/internal/repository"
)

// PaymentService defines the interface for payment read flows
type PaymentService interface {
	// GetTicketPayment retrieves the payment of a ticket owned by the user
	GetTicketPayment(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error)
}

// paymentService implements PaymentService
type paymentService struct {
	ticketRepo     repository.TicketRepository
	enrollmentRepo repository.EnrollmentRepository
	paymentRepo    repository.PaymentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	ticketRepo repository.TicketRepository,
	enrollmentRepo repository.EnrollmentRepository,
	paymentRepo repository.PaymentRepository,
) PaymentService {
	return &paymentService{
		ticketRepo:     ticketRepo,
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
	}
}

// GetTicketPayment retrieves the payment of a ticket. The ticket must
// exist and belong to the requesting user's enrollment.
func (s *paymentService) GetTicketPayment(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, ticket.EnrollmentID)
	if err != nil {
		return nil, err
	}

	if enrollment.UserID != userID {
		return nil, domain.ErrPaymentNotOwned
	}

	payment, err := s.paymentRepo.GetByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	return dto.NewPaymentView(payment), nil
}
