package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/internal/dto"
	"github.com/shaman87/drivent/pkg/middleware"
)

// MockPaymentService is a mock implementation of PaymentService for testing
type MockPaymentService struct {
	GetTicketPaymentFunc func(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error)
}

func (m *MockPaymentService) GetTicketPayment(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error) {
	if m.GetTicketPaymentFunc != nil {
		return m.GetTicketPaymentFunc(ctx, userID, ticketID)
	}
	return nil, domain.ErrPaymentNotFound
}

func setupPaymentRouter(svc *MockPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, "user-001")
		c.Next()
	})
	router.GET("/payments", NewPaymentHandler(svc).GetPayment)
	return router
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockFunc       func(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error)
		expectedStatus int
	}{
		{
			name:  "success",
			query: "?ticketId=ticket-001",
			mockFunc: func(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error) {
				return &dto.PaymentView{ID: "payment-001", TicketID: ticketID, Value: 60000}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing ticket id",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "ticket owned by another user",
			query: "?ticketId=ticket-001",
			mockFunc: func(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error) {
				return nil, domain.ErrPaymentNotOwned
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "ticket does not exist",
			query: "?ticketId=missing-ticket",
			mockFunc: func(ctx context.Context, userID, ticketID string) (*dto.PaymentView, error) {
				return nil, domain.ErrTicketNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPaymentService{GetTicketPaymentFunc: tt.mockFunc}
			router := setupPaymentRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/payments"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("GetPayment() status = %d, want %d", w.Code, tt.expectedStatus)
			}
		})
	}
}
