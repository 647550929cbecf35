package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error
}

// User represents a stored user with credentials. RefreshToken is the single
// currently valid refresh token; empty means logged out.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the outward projection of a user. It never carries the
// password hash or the refresh token.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the user's outward projection.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// SignupParams carries the fields required to register a user.
type SignupParams struct {
	Email    string
	Name     string
	Password string
}
