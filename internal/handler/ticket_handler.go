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

// TicketHandler handles ticket HTTP requests
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// ListTypes handles GET /tickets/types
func (h *TicketHandler) ListTypes(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.ticket.list_types")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	types, err := h.ticketService.ListTypes(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		response.InternalError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, types)
}

// GetTicket handles GET /tickets
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.ticket.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	span.SetAttributes(attribute.String("user_id", userID))

	ticket, err := h.ticketService.GetUserTicket(ctx, userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, ticket)
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.ticket.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		response.BadRequest(c, "ticketTypeId is required")
		return
	}

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("ticket_type_id", req.TicketTypeID),
	)

	ticket, err := h.ticketService.CreateTicket(ctx, userID, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Created(c, ticket)
}

// handleError maps domain errors to HTTP status codes
func (h *TicketHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrTicketTypeNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
