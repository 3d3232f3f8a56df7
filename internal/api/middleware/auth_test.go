package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

type fakeSessionStore struct {
	live map[string]domain.Session
}

func (f *fakeSessionStore) Put(_ context.Context, session domain.Session) error {
	f.live[session.ID] = session
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, sessionID string) (*domain.Session, error) {
	if s, ok := f.live[sessionID]; ok {
		return &s, nil
	}
	return nil, domain.ErrSessionExpired
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(f.live, sessionID)
	return nil
}

func signTestToken(t *testing.T, secret, sid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "1",
		"sid":   sid,
		"role":  "patient",
		"name":  "John Doe",
		"email": "patient@demo.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidTokenWithLiveSession(t *testing.T) {
	e := echo.New()
	sessions := &fakeSessionStore{live: map[string]domain.Session{
		"sid-1": {ID: "sid-1", UserID: "1", Role: domain.RolePatient},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", sessions)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("session_id") != "sid-1" {
			t.Fatalf("session_id not set")
		}
		if c.Get("role") != "patient" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_DeadSessionRejected(t *testing.T) {
	// the token is cryptographically valid but the session behind it is gone;
	// the request must still be rejected
	e := echo.New()
	sessions := &fakeSessionStore{live: map[string]domain.Session{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "secret", "sid-gone"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &fakeSessionStore{live: map[string]domain.Session{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSigningKey(t *testing.T) {
	e := echo.New()
	sessions := &fakeSessionStore{live: map[string]domain.Session{
		"sid-1": {ID: "sid-1", UserID: "1"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &fakeSessionStore{live: map[string]domain.Session{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
