package domain

import "time"

// Enrollment is a user's registration record, one-to-one with the user.
// Its presence is a precondition for any ticket or booking operation.
type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
