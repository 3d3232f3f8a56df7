package ports

import (
	"context"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// UserRepository defines persistence for the user directory. FindByEmail is an
// exact, case-sensitive lookup; no normalization happens below the boundary.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error
	UpdateLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
