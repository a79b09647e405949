package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskden/todo-api/internal/core/domain"
)

type storeStub struct {
	sessions map[string]domain.Session
	getErr   error
}

func (s *storeStub) Create(_ context.Context, _ domain.Session) (string, error) {
	return "", errors.New("not implemented")
}

func (s *storeStub) Get(_ context.Context, token string) (*domain.Session, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *storeStub) Destroy(_ context.Context, _ string) error { return nil }

func invoke(t *testing.T, store *storeStub, cookie *http.Cookie) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get-list", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(store)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return c, called, err
}

func TestSession_ValidToken(t *testing.T) {
	store := &storeStub{sessions: map[string]domain.Session{
		"tok123": {UserID: "u1", Username: "ana1"},
	}}

	c, called, err := invoke(t, store, &http.Cookie{Name: SessionCookie, Value: "tok123"})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("handler not reached")
	}
	if c.Get("user_id") != "u1" || c.Get("username") != "ana1" {
		t.Fatalf("principal not injected: %v %v", c.Get("user_id"), c.Get("username"))
	}
}

func TestSession_MissingCookie(t *testing.T) {
	_, called, err := invoke(t, &storeStub{sessions: map[string]domain.Session{}}, nil)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run without a session")
	}
}

func TestSession_UnknownToken(t *testing.T) {
	store := &storeStub{sessions: map[string]domain.Session{}}

	_, called, err := invoke(t, store, &http.Cookie{Name: SessionCookie, Value: "stale"})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run with an unknown token")
	}
}

func TestSession_StoreFailure(t *testing.T) {
	store := &storeStub{getErr: errors.New("redis down")}

	// Infrastructure failures propagate as-is: the central error handler turns
	// them into a 500, not a 401.
	_, called, err := invoke(t, store, &http.Cookie{Name: SessionCookie, Value: "tok123"})
	if err == nil || errors.As(err, new(*echo.HTTPError)) {
		t.Fatalf("expected raw store error, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run when the store fails")
	}
}
