package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
	"github.com/shaman87/drivent/internal/repository"
	"github.com/shaman87/drivent/pkg/logger"
	"github.com/shaman87/drivent/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// BookingService defines the interface for booking business logic
type BookingService interface {
	// GetUserBooking retrieves the user's booking projected for external use
	GetUserBooking(ctx context.Context, userID string) (*dto.BookingView, error)

	// CreateBooking books a room for the user
	CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingIDResponse, error)

	// ChangeRoom moves the user's booking to another room
	ChangeRoom(ctx context.Context, userID, bookingID string, req *dto.ChangeRoomRequest) (*dto.BookingIDResponse, error)
}

// bookingService implements BookingService
type bookingService struct {
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
	bookingRepo    repository.BookingRepository
	eventPublisher EventPublisher
}

// NewBookingService creates a new booking service
func NewBookingService(
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
	bookingRepo repository.BookingRepository,
	eventPublisher EventPublisher,
) BookingService {
	if eventPublisher == nil {
		eventPublisher = NewNoOpEventPublisher()
	}
	return &bookingService{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		bookingRepo:    bookingRepo,
		eventPublisher: eventPublisher,
	}
}

// GetUserBooking retrieves the user's booking with its room
func (s *bookingService) GetUserBooking(ctx context.Context, userID string) (*dto.BookingView, error) {
	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewBookingView(booking), nil
}

// CreateBooking books a room for the user. Preconditions run strictly in
// order and the first failure wins: enrollment exists, ticket exists,
// ticket is paid and grants hotel access, room exists, user has no
// booking, room is under capacity. The last three run atomically inside
// the repository.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*dto.BookingIDResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("room_id", req.RoomID),
	)

	if _, err := s.enrollmentRepo.GetByUserID(ctx, userID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByUserID(ctx, userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if !ticket.CanBook() {
		span.SetStatus(codes.Error, "ticket not eligible")
		return nil, domain.ErrTicketNotEligible
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		RoomID:    req.RoomID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bookingRepo.CreateInRoom(ctx, booking); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.eventPublisher.PublishBookingCreated(ctx, booking); err != nil {
		// The booking is committed; losing the event must not fail the request
		logger.Get().Warn("failed to publish booking created event",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	logger.Get().Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", userID),
		zap.String("room_id", req.RoomID),
	)

	span.SetStatus(codes.Ok, "")
	return &dto.BookingIDResponse{BookingID: booking.ID}, nil
}

// ChangeRoom moves the user's booking to another room. Preconditions run
// strictly in order: booking exists, booking belongs to the user, room
// exists, room differs from the current one, room is under capacity. The
// last three run atomically inside the repository.
func (s *bookingService) ChangeRoom(ctx context.Context, userID, bookingID string, req *dto.ChangeRoomRequest) (*dto.BookingIDResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.change_room")
	defer span.End()

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("booking_id", bookingID),
		attribute.String("room_id", req.RoomID),
	)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if !booking.BelongsToUser(userID) {
		span.SetStatus(codes.Error, "booking not owned")
		return nil, domain.ErrBookingNotOwned
	}

	moved, err := s.bookingRepo.MoveToRoom(ctx, bookingID, req.RoomID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.eventPublisher.PublishBookingUpdated(ctx, moved); err != nil {
		logger.Get().Warn("failed to publish booking updated event",
			zap.String("booking_id", moved.ID),
			zap.Error(err),
		)
	}

	logger.Get().Info("booking moved",
		zap.String("booking_id", moved.ID),
		zap.String("user_id", userID),
		zap.String("room_id", req.RoomID),
	)

	span.SetStatus(codes.Ok, "")
	return &dto.BookingIDResponse{BookingID: moved.ID}, nil
}
