package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/filter"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// DirectoryService implements the admin user directory.
type DirectoryService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewDirectoryService(users ports.UserRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{users: users, log: log}
}

// ListUsers returns the directory filtered by search/role/status. Stats are
// computed over the unfiltered directory, so the dashboard tiles stay constant
// while the table below them narrows.
func (s *DirectoryService) ListUsers(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	criteria := filter.NewCriteria(in.Search,
		func(u domain.User) string { return u.Name },
		func(u domain.User) string { return u.Email },
	).
		Where(func(u domain.User) string { return string(u.Role) }, in.Role).
		Where(func(u domain.User) string { return string(u.Status) }, in.Status)

	matched := filter.Apply(all, criteria)

	byRole := filter.CountBy(all, func(u domain.User) string { return string(u.Role) })
	stats := ports.UserStats{
		Total:      len(all),
		Active:     filter.Count(all, func(u domain.User) bool { return u.Status == domain.StatusActive }),
		Patients:   byRole[string(domain.RolePatient)],
		Doctors:    byRole[string(domain.RoleDoctor)],
		Caregivers: byRole[string(domain.RoleCaregiver)],
	}

	items := make([]ports.UserSummary, len(matched))
	for i, u := range matched {
		items[i] = ports.UserSummary{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Role:        u.Role,
			Status:      u.Status,
			LastLoginAt: u.LastLoginAt,
			JoinedAt:    u.CreatedAt,
		}
	}

	return &ports.ListUsersResult{Items: items, Matched: len(items), Stats: stats}, nil
}

// CreateUser adds a directory entry. The role is validated against the closed
// enum; unknown roles are rejected here rather than stored.
func (s *DirectoryService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.StatusActive,
		Avatar:       in.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// UpdateUserStatus moves an account between active/inactive/suspended.
func (s *DirectoryService) UpdateUserStatus(ctx context.Context, id, status string) error {
	parsed, err := domain.ParseUserStatus(status)
	if err != nil {
		return err
	}
	if err := s.users.UpdateStatus(ctx, id, parsed); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("status", status).Msg("user status updated")
	return nil
}

// DeleteUser removes a directory entry.
func (s *DirectoryService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
