package ports

import (
	"context"

	"github.com/taskden/todo-api/internal/core/domain"
)

// SessionStore maps opaque tokens to session records with expiry.
//
// Get returns domain.ErrSessionNotFound for tokens that are missing,
// malformed, or expired; callers treat all three identically. Destroy is
// idempotent: destroying an absent token is a no-op.
type SessionStore interface {
	Create(ctx context.Context, session domain.Session) (string, error)
	Get(ctx context.Context, token string) (*domain.Session, error)
	Destroy(ctx context.Context, token string) error
}
