package ports

import (
	"context"
	"time"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// ListUsersInput carries the admin directory filter state. Role and Status
// accept the "all" sentinel (or empty) to match everything.
type ListUsersInput struct {
	Search string
	Role   string
	Status string
}

// UserStats are predicate counts over the UNFILTERED directory; they do not
// change as filters narrow the visible list.
type UserStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Patients   int `json:"patients"`
	Doctors    int `json:"doctors"`
	Caregivers int `json:"caregivers"`
}

// UserSummary is the directory row; it never carries the password hash.
type UserSummary struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        domain.Role       `json:"role"`
	Status      domain.UserStatus `json:"status"`
	LastLoginAt time.Time         `json:"last_login_at"`
	JoinedAt    time.Time         `json:"joined_at"`
}

// ListUsersResult is the filtered view plus the base-collection stats.
type ListUsersResult struct {
	Items   []UserSummary `json:"items"`
	Matched int           `json:"matched"`
	Stats   UserStats     `json:"stats"`
}

// CreateUserInput carries a new directory entry.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Avatar   string
}

// DirectoryService defines the admin user-management use cases.
type DirectoryService interface {
	ListUsers(ctx context.Context, in ListUsersInput) (*ListUsersResult, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, id, status string) error
	DeleteUser(ctx context.Context, id string) error
}
