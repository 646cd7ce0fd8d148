package dto

import "github.com/shaman87/drivent/internal/domain"

// CreateTicketRequest is the payload to create a ticket
type CreateTicketRequest struct {
	TicketTypeID string `json:"ticketTypeId" binding:"required"`
}

// TicketTypeView is the externally visible shape of a ticket type
type TicketTypeView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

// TicketView is the externally visible shape of a ticket
type TicketView struct {
	ID           string         `json:"id"`
	EnrollmentID string         `json:"enrollmentId"`
	TicketTypeID string         `json:"ticketTypeId"`
	Status       string         `json:"status"`
	TicketType   TicketTypeView `json:"ticketType"`
}

// NewTicketTypeView projects a ticket type
func NewTicketTypeView(tt *domain.TicketType) TicketTypeView {
	return TicketTypeView{
		ID:            tt.ID,
		Name:          tt.Name,
		Price:         tt.Price,
		IsRemote:      tt.IsRemote,
		IncludesHotel: tt.IncludesHotel,
	}
}

// NewTicketView projects a ticket and its type
func NewTicketView(ticket *domain.Ticket) *TicketView {
	view := &TicketView{
		ID:           ticket.ID,
		EnrollmentID: ticket.EnrollmentID,
		TicketTypeID: ticket.TicketTypeID,
		Status:       ticket.Status.String(),
	}
	if ticket.TicketType != nil {
		view.TicketType = NewTicketTypeView(ticket.TicketType)
	}
	return view
}
