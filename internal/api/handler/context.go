package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An empty
// user id or role means the middleware did not run for this route; fail closed
// with 401 rather than proceed with a partial identity.
func ctxIdentity(c echo.Context) (userID, sessionID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	sessionID, _ = c.Get("session_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, sessionID, role, nil
}
