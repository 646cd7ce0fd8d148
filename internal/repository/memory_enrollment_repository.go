package repository

import (
	"context"

	"github.com/shaman87/drivent/internal/domain"
)

// MemoryEnrollmentRepository implements EnrollmentRepository using in-memory storage
type MemoryEnrollmentRepository struct {
	store *MemoryStore
}

// NewMemoryEnrollmentRepository creates a new in-memory enrollment repository
func NewMemoryEnrollmentRepository(store *MemoryStore) *MemoryEnrollmentRepository {
	return &MemoryEnrollmentRepository{store: store}
}

var _ EnrollmentRepository = (*MemoryEnrollmentRepository)(nil)

// GetByID retrieves an enrollment by its ID
func (r *MemoryEnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	enrollment, exists := r.store.enrollments[id]
	if !exists {
		return nil, domain.ErrEnrollmentNotFound
	}

	clone := *enrollment
	return &clone, nil
}

// GetByUserID retrieves the enrollment of a user
func (r *MemoryEnrollmentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Enrollment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, enrollment := range r.store.enrollments {
		if enrollment.UserID == userID {
			clone := *enrollment
			return &clone, nil
		}
	}

	return nil, domain.ErrEnrollmentNotFound
}
