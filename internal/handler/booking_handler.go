package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
	"github.com/shaman87/drivent/internal/service"
	"github.com/shaman87/drivent/pkg/middleware"
	"github.com/shaman87/drivent/pkg/response"
	"github.com/shaman87/drivent/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetBooking handles GET /booking
func (h *BookingHandler) GetBooking(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	span.SetAttributes(attribute.String("user_id", userID))

	booking, err := h.bookingService.GetUserBooking(ctx, userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, booking)
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		response.BadRequest(c, "roomId is required")
		return
	}

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("room_id", req.RoomID),
	)

	result, err := h.bookingService.CreateBooking(ctx, userID, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetAttributes(attribute.String("booking_id", result.BookingID))
	span.SetStatus(codes.Ok, "")
	response.Success(c, result)
}

// ChangeRoom handles PUT /booking/:bookingId
func (h *BookingHandler) ChangeRoom(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.change_room")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	bookingID := c.Param("bookingId")
	if bookingID == "" {
		span.SetStatus(codes.Error, "booking id required")
		response.BadRequest(c, "bookingId is required")
		return
	}

	var req dto.ChangeRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		response.BadRequest(c, "roomId is required")
		return
	}

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("booking_id", bookingID),
		attribute.String("room_id", req.RoomID),
	)

	result, err := h.bookingService.ChangeRoom(ctx, userID, bookingID, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, result)
}

// handleError maps domain errors to HTTP status codes
func (h *BookingHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrTicketNotEligible),
		errors.Is(err, domain.ErrBookingNotOwned),
		errors.Is(err, domain.ErrBookingAlreadyExists),
		errors.Is(err, domain.ErrSameRoom),
		errors.Is(err, domain.ErrRoomCapacityReached):
		response.Forbidden(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
