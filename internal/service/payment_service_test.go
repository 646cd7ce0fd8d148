package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shaman87/drivent/internal/domain"
)

func TestPaymentService_GetTicketPayment(t *testing.T) {
	ownTicket := func(tr *MockTicketRepository, er *MockEnrollmentRepository) {
		tr.GetByIDFunc = func(ctx context.Context, id string) (*domain.Ticket, error) {
			return &domain.Ticket{ID: id, EnrollmentID: "enrollment-001"}, nil
		}
		er.GetByIDFunc = func(ctx context.Context, id string) (*domain.Enrollment, error) {
			return &domain.Enrollment{ID: id, UserID: "user-001"}, nil
		}
	}

	t.Run("success", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		enrollmentRepo := &MockEnrollmentRepository{}
		ownTicket(ticketRepo, enrollmentRepo)
		paymentRepo := &MockPaymentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID string) (*domain.Payment, error) {
				return &domain.Payment{
					ID:             "payment-001",
					TicketID:       ticketID,
					Value:          60000,
					CardIssuer:     "VISA",
					CardLastDigits: "1234",
				}, nil
			},
		}

		svc := NewPaymentService(ticketRepo, enrollmentRepo, paymentRepo)

		payment, err := svc.GetTicketPayment(context.Background(), "user-001", "ticket-001")
		if err != nil {
			t.Fatalf("GetTicketPayment() unexpected error = %v", err)
		}
		if payment.ID != "payment-001" || payment.Value != 60000 {
			t.Errorf("GetTicketPayment() payment = %+v", payment)
		}
	})

	t.Run("ticket does not exist", func(t *testing.T) {
		svc := NewPaymentService(&MockTicketRepository{}, &MockEnrollmentRepository{}, &MockPaymentRepository{})

		_, err := svc.GetTicketPayment(context.Background(), "user-001", "missing-ticket")
		if !errors.Is(err, domain.ErrTicketNotFound) {
			t.Errorf("GetTicketPayment() error = %v, want %v", err, domain.ErrTicketNotFound)
		}
	})

	t.Run("ticket owned by another user", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		enrollmentRepo := &MockEnrollmentRepository{}
		ownTicket(ticketRepo, enrollmentRepo)

		svc := NewPaymentService(ticketRepo, enrollmentRepo, &MockPaymentRepository{})

		_, err := svc.GetTicketPayment(context.Background(), "user-002", "ticket-001")
		if !errors.Is(err, domain.ErrPaymentNotOwned) {
			t.Errorf("GetTicketPayment() error = %v, want %v", err, domain.ErrPaymentNotOwned)
		}
	})

	t.Run("no payment", func(t *testing.T) {
		ticketRepo := &MockTicketRepository{}
		enrollmentRepo := &MockEnrollmentRepository{}
		ownTicket(ticketRepo, enrollmentRepo)

		svc := NewPaymentService(ticketRepo, enrollmentRepo, &MockPaymentRepository{})

		_, err := svc.GetTicketPayment(context.Background(), "user-001", "ticket-001")
		if !errors.Is(err, domain.ErrPaymentNotFound) {
			t.Errorf("GetTicketPayment() error = %v, want %v", err, domain.ErrPaymentNotFound)
		}
	})
}
