package ports

import (
	"context"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// SessionStore holds the single live session per user. Put overwrites any
// previous session for the same user (second login kills the first); Get on a
// missing or expired session returns domain.ErrSessionExpired.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
