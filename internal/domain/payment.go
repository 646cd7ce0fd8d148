package domain

import "time"

// Payment records the settled payment of a ticket. It is written by the
// payment subsystem; this service only reads it.
type Payment struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticket_id"`
	Value          int64     `json:"value"` // cents
	CardIssuer     string    `json:"card_issuer"`
	CardLastDigits string    `json:"card_last_digits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
