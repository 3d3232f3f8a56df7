package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mindlink/dashboard-api/internal/api/metrics"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// Auth validates the JWT and confirms the session it references is still live
// in the session store. A token that parses but whose session has been logged
// out, evicted by a newer login, or expired is rejected, so every request is
// decided against current state rather than the state at token issue time.
// On success the claims are injected into context.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated("invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unauthenticated("invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return unauthenticated("invalid token")
			}
			if _, err := sessions.Get(c.Request().Context(), sid); err != nil {
				return unauthenticated("session expired")
			}

			c.Set("user_id", claims["sub"])
			c.Set("session_id", sid)
			c.Set("role", claims["role"])
			c.Set("name", claims["name"])
			c.Set("email", claims["email"])

			return next(c)
		}
	}
}

func unauthenticated(msg string) error {
	metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
