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

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPayment handles GET /payments?ticketId=
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.payment.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	userID := middleware.UserID(c)
	if userID == "" {
		span.SetStatus(codes.Error, "unauthorized")
		response.Unauthorized(c, "authentication required")
		return
	}

	ticketID := c.Query("ticketId")
	if ticketID == "" {
		span.SetStatus(codes.Error, "ticket id required")
		response.BadRequest(c, "ticketId is required")
		return
	}

	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("ticket_id", ticketID),
	)

	payment, err := h.paymentService.GetTicketPayment(ctx, userID, ticketID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, payment)
}

// handleError maps domain errors to HTTP status codes
func (h *PaymentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrPaymentNotOwned):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
