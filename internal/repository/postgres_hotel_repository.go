package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaman87/drivent/internal/domain"
)

// PostgresHotelRepository implements HotelRepository using PostgreSQL with pgxpool
type PostgresHotelRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHotelRepository creates a new PostgresHotelRepository
func NewPostgresHotelRepository(pool *pgxpool.Pool) *PostgresHotelRepository {
	return &PostgresHotelRepository{pool: pool}
}

var _ HotelRepository = (*PostgresHotelRepository)(nil)

// List retrieves all hotels
func (r *PostgresHotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*domain.Hotel
	for rows.Next() {
		hotel := &domain.Hotel{}
		err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Image,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hotels: %w", err)
	}

	return hotels, nil
}

// GetWithRooms retrieves a hotel by ID with its rooms
func (r *PostgresHotelRepository) GetWithRooms(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	hotel := &domain.Hotel{}
	err := r.pool.QueryRow(ctx, query, hotelID).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Image,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}

	roomsQuery := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, roomsQuery, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var room domain.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.HotelID,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		hotel.Rooms = append(hotel.Rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}

	return hotel, nil
}

// GetRoom retrieves a room by its ID
func (r *PostgresHotelRepository) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	room := &domain.Room{}
	err := r.pool.QueryRow(ctx, query, roomID).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}
