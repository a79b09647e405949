package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskden/todo-api/internal/api/metrics"
	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "todo_session"

// Session resolves the session cookie through the store and injects the
// authenticated principal into the request context. Requests without a valid
// session never reach the handler. Missing, malformed, and expired tokens are
// indistinguishable to the caller.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("invalid_session").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return err
			}

			c.Set("user_id", sess.UserID)
			c.Set("username", sess.Username)

			return next(c)
		}
	}
}
