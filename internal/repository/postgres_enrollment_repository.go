package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaman87/drivent/internal/domain"
)

// PostgresEnrollmentRepository implements EnrollmentRepository using PostgreSQL with pgxpool
type PostgresEnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEnrollmentRepository creates a new PostgresEnrollmentRepository
func NewPostgresEnrollmentRepository(pool *pgxpool.Pool) *PostgresEnrollmentRepository {
	return &PostgresEnrollmentRepository{pool: pool}
}

var _ EnrollmentRepository = (*PostgresEnrollmentRepository)(nil)

// GetByID retrieves an enrollment by its ID
func (r *PostgresEnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM enrollments
		WHERE id = $1
	`
	return r.queryOne(ctx, query, id)
}

// GetByUserID retrieves the enrollment of a user
func (r *PostgresEnrollmentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`
	return r.queryOne(ctx, query, userID)
}

func (r *PostgresEnrollmentRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Enrollment, error) {
	enrollment := &domain.Enrollment{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return enrollment, nil
}
