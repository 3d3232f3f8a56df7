package domain

import (
	"errors"
	"time"
)

// Role is the closed set of portal roles. Unknown values are rejected at the
// boundary (login, user creation) rather than carried around as free strings.
type Role string

const (
	RolePatient   Role = "patient"
	RoleDoctor    Role = "doctor"
	RoleCaregiver Role = "caregiver"
	RoleAdmin     Role = "admin"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a string into a Role, rejecting anything outside the
// four known variants.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleDoctor, RoleCaregiver, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role is one of the four known variants.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// UserStatus represents the account lifecycle state shown in the admin directory.
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusSuspended UserStatus = "suspended"
)

var ErrInvalidUserStatus = errors.New("invalid user status")

// ParseUserStatus converts a string into a UserStatus.
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case StatusActive, StatusInactive, StatusSuspended:
		return UserStatus(s), nil
	}
	return "", ErrInvalidUserStatus
}

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrSessionExpired     = errors.New("session expired")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated actor in the system. The password hash never
// leaves the server.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Avatar       string     `json:"avatar,omitempty"`
	LastLoginAt  time.Time  `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Session is the single live authenticated identity for a user. A second
// login overwrites it; logout deletes it.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
