package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaman87/drivent/internal/domain"
	"github.com/shaman87/drivent/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL with pgxpool
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

var _ BookingRepository = (*PostgresBookingRepository)(nil)

const bookingSelect = `
	SELECT
		b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id`

// GetByID retrieves a booking by its ID, joined with its room
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := bookingSelect + ` WHERE b.id = $1`
	return r.queryOne(ctx, query, id)
}

// GetByUserID retrieves the user's booking, joined with its room
func (r *PostgresBookingRepository) GetByUserID(ctx context.Context, userID string) (*domain.Booking, error) {
	query := bookingSelect + ` WHERE b.user_id = $1`
	return r.queryOne(ctx, query, userID)
}

// CountByRoomID counts the bookings referencing a room
func (r *PostgresBookingRepository) CountByRoomID(ctx context.Context, roomID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// CreateInRoom inserts a booking after verifying the room checks inside a
// single transaction. The room row is locked for the duration of the
// transaction so concurrent creates against the same room serialize.
func (r *PostgresBookingRepository) CreateInRoom(ctx context.Context, booking *domain.Booking) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.create_in_room")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking_id", booking.ID),
		attribute.String("user_id", booking.UserID),
		attribute.String("room_id", booking.RoomID),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	capacity, err := lockRoom(ctx, tx, booking.RoomID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	var hasBooking bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE user_id = $1)`, booking.UserID).Scan(&hasBooking)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to check existing booking: %w", err)
	}
	if hasBooking {
		span.SetStatus(codes.Error, "booking already exists")
		return domain.ErrBookingAlreadyExists
	}

	occupied, err := countRoomTx(ctx, tx, booking.RoomID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if occupied >= capacity {
		span.SetStatus(codes.Error, "room capacity reached")
		return domain.ErrRoomCapacityReached
	}

	query := `
		INSERT INTO bookings (id, user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.RoomID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// MoveToRoom reassigns a booking to another room after verifying the room
// checks inside a single transaction, locking the target room row.
func (r *PostgresBookingRepository) MoveToRoom(ctx context.Context, bookingID, roomID string) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.move_to_room")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking_id", bookingID),
		attribute.String("room_id", roomID),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	booking := &domain.Booking{}
	err = tx.QueryRow(ctx, `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = $1 FOR UPDATE`, bookingID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrBookingNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.RoomID == roomID {
		span.SetStatus(codes.Error, "same room")
		return nil, domain.ErrSameRoom
	}

	occupied, err := countRoomTx(ctx, tx, roomID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if occupied >= capacity {
		span.SetStatus(codes.Error, "room capacity reached")
		return nil, domain.ErrRoomCapacityReached
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `UPDATE bookings SET room_id = $2, updated_at = $3 WHERE id = $1`, bookingID, roomID, now)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	booking.RoomID = roomID
	booking.UpdatedAt = now

	span.SetStatus(codes.Ok, "")
	return booking, nil
}

// lockRoom locks the room row for the transaction and returns its capacity
func lockRoom(ctx context.Context, tx pgx.Tx, roomID string) (int, error) {
	var capacity int
	err := tx.QueryRow(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to lock room: %w", err)
	}
	return capacity, nil
}

func countRoomTx(ctx context.Context, tx pgx.Tx, roomID string) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (r *PostgresBookingRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	booking := &domain.Booking{Room: &domain.Room{}}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.Room.ID,
		&booking.Room.Name,
		&booking.Room.Capacity,
		&booking.Room.HotelID,
		&booking.Room.CreatedAt,
		&booking.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}
