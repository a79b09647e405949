package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/api/metrics"
	"github.com/taskden/todo-api/internal/api/middleware"
	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and session introspection.
type AuthHandler struct {
	authService  ports.AuthService
	sessions     ports.SessionStore
	logger       zerolog.Logger
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, logger zerolog.Logger, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		logger:       logger,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type accountSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
}

type authResponse struct {
	Success bool           `json:"success"`
	User    accountSummary `json:"user"`
}

type statusResponse struct {
	Success bool `json:"success"`
}

type sessionResponse struct {
	Session  bool   `json:"session"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

// Register creates an account and establishes a session immediately:
// registration implies login.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return err
	}

	if err := h.establishSession(c, account, "register"); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    accountSummary{ID: account.ID, Name: account.Name, Username: account.Username},
	})
}

// Login verifies credentials and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		}
		return err
	}

	if err := h.establishSession(c, account, "login"); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    accountSummary{ID: account.ID, Username: account.Username},
	})
}

// Logout destroys the current session, if any, and clears the cookie. Always
// succeeds; logging out twice is a no-op.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn().Err(err).Msg("session destroy failed during logout")
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, statusResponse{Success: true})
}

// GetSession reports whether the current cookie maps to an active session.
// Never fails: an absent or invalid session yields {"session": false}.
//
// @Summary      Inspect the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /get-session [get]
func (h *AuthHandler) GetSession(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookie)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, sessionResponse{Session: false})
	}

	sess, err := h.sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return c.JSON(http.StatusOK, sessionResponse{Session: false})
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Session:  true,
		UserID:   sess.UserID,
		Username: sess.Username,
	})
}

func (h *AuthHandler) establishSession(c echo.Context, account *domain.Account, method string) error {
	token, err := h.sessions.Create(c.Request().Context(), domain.Session{
		UserID:   account.ID,
		Username: account.Username,
	})
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, int(h.sessionTTL.Seconds())))
	metrics.SessionsCreatedTotal.WithLabelValues(method).Inc()
	return nil
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(h.sessionCookie("", -1))
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
