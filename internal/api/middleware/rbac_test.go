package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/core/domain"
)

func runRBAC(t *testing.T, role string, allowed ...domain.Role) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	called := false
	handler := RBAC(allowed...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestRBAC_AllowedRole(t *testing.T) {
	code, called := runRBAC(t, "admin", domain.RoleAdmin)
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass-through, got code=%d called=%v", code, called)
	}
}

func TestRBAC_MultipleAllowedRoles(t *testing.T) {
	code, called := runRBAC(t, "doctor", domain.RolePatient, domain.RoleDoctor, domain.RoleAdmin)
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass-through, got code=%d called=%v", code, called)
	}
}

func TestRBAC_ForbiddenRole(t *testing.T) {
	code, called := runRBAC(t, "patient", domain.RoleAdmin)
	if called {
		t.Fatalf("handler reached despite wrong role")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_MissingRoleFailsClosed(t *testing.T) {
	code, called := runRBAC(t, "", domain.RoleAdmin)
	if called {
		t.Fatalf("handler reached without a role")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_UnknownRoleFailsClosed(t *testing.T) {
	code, called := runRBAC(t, "superuser", domain.RoleAdmin, domain.RoleDoctor)
	if called {
		t.Fatalf("handler reached with unknown role")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
