package ports

import (
	"context"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

// RegisterInput carries the fields of a new dashboard account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

// TokenClaims is the subset of JWT claims the API relies on.
type TokenClaims struct {
	UserID    int64
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
	Logout(ctx context.Context, actor domain.Actor, tokenID string, expiresAt time.Time) error
}
