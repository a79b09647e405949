package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxPrincipal extracts the session principal injected by the Session
// middleware and performs a fast-fail check before any service call: a
// non-empty user_id proves the middleware ran on this route.
func ctxPrincipal(c echo.Context) (userID, username string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session principal")
	}

	username, _ = c.Get("username").(string)
	return userID, username, nil
}
