package ports

import (
	"context"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// LoginInput carries the login form fields. Role is what the user selected in
// the portal picker; it must match the account's stored role.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// AuthService implements login, logout, and current-user resolution. Login
// failures (unknown email, wrong password, role mismatch, inactive account)
// are all reported as domain.ErrInvalidCredentials so callers cannot tell
// them apart.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (token string, user *domain.User, err error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}
