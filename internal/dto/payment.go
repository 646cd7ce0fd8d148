package dto

import "github.com/shaman87/drivent/internal/domain"

// PaymentView is the externally visible shape of a payment
type PaymentView struct {
	ID             string `json:"id"`
	TicketID       string `json:"ticketId"`
	Value          int64  `json:"value"`
	CardIssuer     string `json:"cardIssuer"`
	CardLastDigits string `json:"cardLastDigits"`
}

// NewPaymentView projects a payment
func NewPaymentView(payment *domain.Payment) *PaymentView {
	return &PaymentView{
		ID:             payment.ID,
		TicketID:       payment.TicketID,
		Value:          payment.Value,
		CardIssuer:     payment.CardIssuer,
		CardLastDigits: payment.CardLastDigits,
	}
}
