package repository

import (
	"context"

	"github.com/shaman87/drivent/internal/domain"
)

// MemoryPaymentRepository implements PaymentRepository using in-memory storage
type MemoryPaymentRepository struct {
	store *MemoryStore
}

// NewMemoryPaymentRepository creates a new in-memory payment repository
func NewMemoryPaymentRepository(store *MemoryStore) *MemoryPaymentRepository {
	return &MemoryPaymentRepository{store: store}
}

var _ PaymentRepository = (*MemoryPaymentRepository)(nil)

// GetByTicketID retrieves the payment of a ticket
func (r *MemoryPaymentRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, payment := range r.store.payments {
		if payment.TicketID == ticketID {
			clone := *payment
			return &clone, nil
		}
	}

	return nil, domain.ErrPaymentNotFound
}
