package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaman87/drivent/internal/domain"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL with pgxpool
type PostgresPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{pool: pool}
}

var _ PaymentRepository = (*PostgresPaymentRepository)(nil)

// GetByTicketID retrieves the payment of a ticket
func (r *PostgresPaymentRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.Payment, error) {
	query := `
		SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
		FROM payments
		WHERE ticket_id = $1
	`

	payment := &domain.Payment{}
	err := r.pool.QueryRow(ctx, query, ticketID).Scan(
		&payment.ID,
		&payment.TicketID,
		&payment.Value,
		&payment.CardIssuer,
		&payment.CardLastDigits,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}
