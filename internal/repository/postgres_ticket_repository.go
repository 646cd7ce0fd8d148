package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaman87/drivent/internal/domain"
)

// PostgresTicketRepository implements TicketRepository using PostgreSQL with pgxpool
type PostgresTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketRepository creates a new PostgresTicketRepository
func NewPostgresTicketRepository(pool *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{pool: pool}
}

var _ TicketRepository = (*PostgresTicketRepository)(nil)

// ListTypes retrieves all ticket types
func (r *PostgresTicketRepository) ListTypes(ctx context.Context) ([]*domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	defer rows.Close()

	var types []*domain.TicketType
	for rows.Next() {
		ticketType := &domain.TicketType{}
		err := rows.Scan(
			&ticketType.ID,
			&ticketType.Name,
			&ticketType.Price,
			&ticketType.IsRemote,
			&ticketType.IncludesHotel,
			&ticketType.CreatedAt,
			&ticketType.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}
		types = append(types, ticketType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ticket types: %w", err)
	}

	return types, nil
}

// GetTypeByID retrieves a ticket type by its ID
func (r *PostgresTicketRepository) GetTypeByID(ctx context.Context, id string) (*domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		WHERE id = $1
	`

	ticketType := &domain.TicketType{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}

	return ticketType, nil
}

// GetByID retrieves a ticket by its ID, joined with its type
func (r *PostgresTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := ticketSelect + ` WHERE t.id = $1`
	return r.queryOne(ctx, query, id)
}

// GetByUserID retrieves the user's single ticket, joined with its type
func (r *PostgresTicketRepository) GetByUserID(ctx context.Context, userID string) (*domain.Ticket, error) {
	query := ticketSelect + `
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE e.user_id = $1`
	return r.queryOne(ctx, query, userID)
}

// Create persists a new ticket
func (r *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (id, enrollment_id, ticket_type_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.EnrollmentID,
		ticket.TicketTypeID,
		ticket.Status.String(),
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

const ticketSelect = `
	SELECT
		t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
	FROM tickets t
	JOIN ticket_types tt ON tt.id = t.ticket_type_id`

func (r *PostgresTicketRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Ticket, error) {
	ticket := &domain.Ticket{TicketType: &domain.TicketType{}}
	var status string

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.Price,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt,
		&ticket.TicketType.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	ticket.Status = domain.TicketStatus(status)
	return ticket, nil
}
