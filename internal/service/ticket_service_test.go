package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
)

func TestTicketService_GetUserTicket(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		enrollmentRepo := &MockEnrollmentRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*domain.Enrollment, error) {
				return enrolledUser(userID), nil
			},
		}
		ticketRepo := &MockTicketRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*domain.Ticket, error) {
				return ticketWith(domain.TicketStatusReserved, false, true), nil
			},
		}

		svc := NewTicketService(enrollmentRepo, ticketRepo)

		ticket, err := svc.GetUserTicket(context.Background(), "user-001")
		if err != nil {
			t.Fatalf("GetUserTicket() unexpected error = %v", err)
		}
		if ticket.ID != "ticket-001" {
			t.Errorf("GetUserTicket() id = %q, want %q", ticket.ID, "ticket-001")
		}
		if ticket.Status != "RESERVED" {
			t.Errorf("GetUserTicket() status = %q, want RESERVED", ticket.Status)
		}
		if ticket.TicketType.ID != "type-001" {
			t.Errorf("GetUserTicket() ticket type = %+v", ticket.TicketType)
		}
	})

	t.Run("no enrollment", func(t *testing.T) {
		svc := NewTicketService(&MockEnrollmentRepository{}, &MockTicketRepository{})

		_, err := svc.GetUserTicket(context.Background(), "user-001")
		if !errors.Is(err, domain.ErrEnrollmentNotFound) {
			t.Errorf("GetUserTicket() error = %v, want %v", err, domain.ErrEnrollmentNotFound)
		}
	})

	t.Run("no ticket", func(t *testing.T) {
		enrollmentRepo := &MockEnrollmentRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*domain.Enrollment, error) {
				return enrolledUser(userID), nil
			},
		}

		svc := NewTicketService(enrollmentRepo, &MockTicketRepository{})

		_, err := svc.GetUserTicket(context.Background(), "user-001")
		if !errors.Is(err, domain.ErrTicketNotFound) {
			t.Errorf("GetUserTicket() error = %v, want %v", err, domain.ErrTicketNotFound)
		}
	})
}

func TestTicketService_CreateTicket(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		enrollmentRepo := &MockEnrollmentRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*domain.Enrollment, error) {
				return enrolledUser(userID), nil
			},
		}
		var created *domain.Ticket
		ticketRepo := &MockTicketRepository{
			GetTypeByIDFunc: func(ctx context.Context, id string) (*domain.TicketType, error) {
				return &domain.TicketType{ID: id, Name: "Presential + Hotel", Price: 60000, IncludesHotel: true}, nil
			},
			CreateFunc: func(ctx context.Context, ticket *domain.Ticket) error {
				created = ticket
				return nil
			},
		}

		svc := NewTicketService(enrollmentRepo, ticketRepo)

		view, err := svc.CreateTicket(context.Background(), "user-001", &dto.CreateTicketRequest{TicketTypeID: "type-001"})
		if err != nil {
			t.Fatalf("CreateTicket() unexpected error = %v", err)
		}
		if view.Status != "RESERVED" {
			t.Errorf("CreateTicket() status = %q, want RESERVED", view.Status)
		}
		if created == nil {
			t.Fatal("CreateTicket() did not persist the ticket")
		}
		if created.EnrollmentID != "enrollment-001" {
			t.Errorf("CreateTicket() enrollmentID = %q, want enrollment-001", created.EnrollmentID)
		}
		if created.Status != domain.TicketStatusReserved {
			t.Errorf("CreateTicket() persisted status = %q, want RESERVED", created.Status)
		}
	})

	t.Run("no enrollment", func(t *testing.T) {
		svc := NewTicketService(&MockEnrollmentRepository{}, &MockTicketRepository{})

		_, err := svc.CreateTicket(context.Background(), "user-001", &dto.CreateTicketRequest{TicketTypeID: "type-001"})
		if !errors.Is(err, domain.ErrEnrollmentNotFound) {
			t.Errorf("CreateTicket() error = %v, want %v", err, domain.ErrEnrollmentNotFound)
		}
	})

	t.Run("unknown ticket type", func(t *testing.T) {
		enrollmentRepo := &MockEnrollmentRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*domain.Enrollment, error) {
				return enrolledUser(userID), nil
			},
		}

		svc := NewTicketService(enrollmentRepo, &MockTicketRepository{})

		_, err := svc.CreateTicket(context.Background(), "user-001", &dto.CreateTicketRequest{TicketTypeID: "missing-type"})
		if !errors.Is(err, domain.ErrTicketTypeNotFound) {
			t.Errorf("CreateTicket() error = %v, want %v", err, domain.ErrTicketTypeNotFound)
		}
	})
}

func TestTicketService_ListTypes(t *testing.T) {
	ticketRepo := &MockTicketRepository{
		ListTypesFunc: func(ctx context.Context) ([]*domain.TicketType, error) {
			return []*domain.TicketType{
				{ID: "type-001", Name: "Online", Price: 10000, IsRemote: true},
				{ID: "type-002", Name: "Presential + Hotel", Price: 60000, IncludesHotel: true},
			}, nil
		},
	}

	svc := NewTicketService(&MockEnrollmentRepository{}, ticketRepo)

	types, err := svc.ListTypes(context.Background())
	if err != nil {
		t.Fatalf("ListTypes() unexpected error = %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("ListTypes() returned %d types, want 2", len(types))
	}
	if types[0].Name != "Online" || !types[0].IsRemote {
		t.Errorf("ListTypes() first type = %+v", types[0])
	}
}
