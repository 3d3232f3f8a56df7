package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// AuthService implements login, logout, and current-user resolution over the
// user repository and the session store.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Login verifies credentials and the selected role, then issues a fresh
// session. Unknown email, wrong password, role mismatch, and non-active
// accounts all fail with ErrInvalidCredentials: the caller gets a single
// generic signal regardless of which check tripped.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	selectedRole, err := domain.ParseRole(in.Role)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Role != selectedRole {
		s.log.Debug().Str("email", in.Email).Msg("login role mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.StatusActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return "", nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}

	token, err := s.signToken(user, session)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return token, user, nil
}

// Logout clears the session unconditionally; logging out twice is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves the live session to its user record.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, session.UserID)
}

func (s *AuthService) signToken(user *domain.User, session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"sid":   session.ID,
		"role":  string(user.Role),
		"name":  user.Name,
		"email": user.Email,
		"exp":   session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
