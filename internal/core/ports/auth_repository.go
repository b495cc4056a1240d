package ports

import (
	"context"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

// UserRepository defines the persistence operations behind authentication.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByLogin matches either the username or the email.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// TokenRevoker tracks logged-out tokens until they would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
