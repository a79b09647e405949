package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/core/domain"
)

// serveFailing routes a request through echo with a handler that returns err,
// so the central error handler renders the final response.
func serveFailing(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"fields required", domain.ErrFieldsRequired, http.StatusBadRequest, domain.ErrFieldsRequired.Error()},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest, domain.ErrPasswordMismatch.Error()},
		{"title required", domain.ErrTitleRequired, http.StatusBadRequest, domain.ErrTitleRequired.Error()},
		{"invalid status", domain.ErrInvalidItemStatus, http.StatusBadRequest, domain.ErrInvalidItemStatus.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"session not found", domain.ErrSessionNotFound, http.StatusUnauthorized, "authentication required"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "username already taken"},
		{"list not found", domain.ErrListNotFound, http.StatusNotFound, "list not found"},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, "item not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveFailing(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Success {
				t.Fatalf("error envelope must carry success=false")
			}
			if resp.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp.Message)
			}
		})
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	rec := serveFailing(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Success || resp.Message != "name is required" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := serveFailing(t, errors.New("pq: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	// The store's raw error text must never reach the client.
	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message != "internal server error" {
		t.Fatalf("leaked internal error: %q", resp.Message)
	}
}
