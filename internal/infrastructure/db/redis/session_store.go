package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// SessionStore keeps live sessions in Redis.
// Key formats:
//
//	session:<session_id>   JSON session document, TTL until expiry
//	user_session:<user_id> current session id for the user
//
// The reverse key enforces one live session per user: Put deletes whatever
// session the user held before writing the new one.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put stores the session and evicts the user's previous one, if any.
func (s *SessionStore) Put(ctx context.Context, session domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	prev, err := s.client.Get(ctx, userKey(session.UserID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("lookup previous session: %w", err)
	}

	pipe := s.client.TxPipeline()
	if prev != "" {
		pipe.Del(ctx, sessionKey(prev))
	}
	pipe.Set(ctx, sessionKey(session.ID), payload, ttl)
	pipe.Set(ctx, userKey(session.UserID), session.ID, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get returns the live session or domain.ErrSessionExpired when the key is
// gone, which covers logout, eviction by a newer login, and TTL expiry alike.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes the session and its reverse key. Deleting a session that is
// already gone is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	session, err := s.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionExpired) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.Del(ctx, userKey(session.UserID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userKey(userID string) string {
	return "user_session:" + userID
}
