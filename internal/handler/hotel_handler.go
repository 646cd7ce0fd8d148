package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/service"
	"github.com/shaman87/drivent/pkg/middleware"
	"github.com/shaman87/drivent/pkg/response"
	"github.com/shaman87/drivent/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HotelHandler handles hotel HTTP requests
type HotelHandler struct {
	hotelService service.HotelService
}

// NewHotelHandler creates a new hotel handler
func NewHotelHandler(hotelService service.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// ListHotels handles GET /hotels
func (h *HotelHandler) ListHotels(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.hotel.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	span.SetAttributes(attribute.String("user_id", userID))

	hotels, err := h.hotelService.ListHotels(ctx, userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, hotels)
}

// GetHotelRooms handles GET /hotels/:hotelId
func (h *HotelHandler) GetHotelRooms(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.hotel.get_rooms")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	hotelID := c.Param("hotelId")
	if hotelID == "" {
		span.SetStatus(codes.Error, "hotel id required")
		response.BadRequest(c, "hotelId is required")
		return
	}

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("hotel_id", hotelID),
	)

	hotel, err := h.hotelService.GetHotelRooms(ctx, userID, hotelID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, hotel)
}

// handleError maps domain errors to HTTP status codes. Category
// ineligibility maps to 403 and an unpaid ticket to 402, in that priority.
func (h *HotelHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrHotelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrHotelAccessForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrTicketNotPaid):
		response.PaymentRequired(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
