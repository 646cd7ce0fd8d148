package repository

import (
	"context"
	"sort"

	"github.com/shaman87/drivent/internal/domain"
)

// MemoryTicketRepository implements TicketRepository using in-memory storage
type MemoryTicketRepository struct {
	store *MemoryStore
}

// NewMemoryTicketRepository creates a new in-memory ticket repository
func NewMemoryTicketRepository(store *MemoryStore) *MemoryTicketRepository {
	return &MemoryTicketRepository{store: store}
}

var _ TicketRepository = (*MemoryTicketRepository)(nil)

// ListTypes retrieves all ticket types
func (r *MemoryTicketRepository) ListTypes(ctx context.Context) ([]*domain.TicketType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var types []*domain.TicketType
	for _, tt := range r.store.ticketTypes {
		clone := *tt
		types = append(types, &clone)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].CreatedAt.Before(types[j].CreatedAt)
	})

	return types, nil
}

// GetTypeByID retrieves a ticket type by its ID
func (r *MemoryTicketRepository) GetTypeByID(ctx context.Context, id string) (*domain.TicketType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tt, exists := r.store.ticketTypes[id]
	if !exists {
		return nil, domain.ErrTicketTypeNotFound
	}

	clone := *tt
	return &clone, nil
}

// GetByID retrieves a ticket by its ID, joined with its type
func (r *MemoryTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ticket, exists := r.store.tickets[id]
	if !exists {
		return nil, domain.ErrTicketNotFound
	}

	return r.store.joinedTicket(ticket), nil
}

// GetByUserID retrieves the user's single ticket, joined with its type
func (r *MemoryTicketRepository) GetByUserID(ctx context.Context, userID string) (*domain.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var enrollmentID string
	for _, enrollment := range r.store.enrollments {
		if enrollment.UserID == userID {
			enrollmentID = enrollment.ID
			break
		}
	}
	if enrollmentID == "" {
		return nil, domain.ErrTicketNotFound
	}

	for _, ticket := range r.store.tickets {
		if ticket.EnrollmentID == enrollmentID {
			return r.store.joinedTicket(ticket), nil
		}
	}

	return nil, domain.ErrTicketNotFound
}

// Create persists a new ticket
func (r *MemoryTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *ticket
	clone.TicketType = nil
	r.store.tickets[ticket.ID] = &clone

	return nil
}
