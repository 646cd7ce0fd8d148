package domain

import "time"

// TicketStatus represents the payment state of a ticket
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// IsValid checks if the status is a valid TicketStatus
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusReserved, TicketStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of TicketStatus
func (s TicketStatus) String() string {
	return string(s)
}

// TicketType is immutable reference data describing a purchasable ticket category
type TicketType struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"` // cents
	IsRemote      bool      `json:"is_remote"`
	IncludesHotel bool      `json:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Ticket belongs to one enrollment and references one ticket type.
// A user has at most one ticket. Status flips RESERVED -> PAID only
// through the payment subsystem; this service never writes it.
type Ticket struct {
	ID           string       `json:"id"`
	EnrollmentID string       `json:"enrollment_id"`
	TicketTypeID string       `json:"ticket_type_id"`
	Status       TicketStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// TicketType is populated on joined reads
	TicketType *TicketType `json:"ticket_type,omitempty"`
}

// IsPaid checks if the ticket has been paid
func (t *Ticket) IsPaid() bool {
	return t.Status == TicketStatusPaid
}

// GrantsHotelAccess checks if the ticket category entitles its owner to a hotel stay.
// Payment state is not part of this check.
func (t *Ticket) GrantsHotelAccess() bool {
	return t.TicketType != nil && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}

// CanBook combines category entitlement and payment state, the write-path gate
func (t *Ticket) CanBook() bool {
	return t.IsPaid() && t.GrantsHotelAccess()
}
