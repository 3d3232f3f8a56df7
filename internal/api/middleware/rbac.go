package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/api/metrics"
	"github.com/mindlink/dashboard-api/internal/core/domain"
)

// RBAC enforces role-based access control over an allow-list of roles. A live
// session with a role outside the list gets 403; anything without a
// recognisable role fails closed with the same code.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				metrics.AuthzDecisionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			metrics.AuthzDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
