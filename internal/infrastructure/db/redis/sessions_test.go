package redis

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/taskden/todo-api/internal/core/domain"
)

func TestGenerateToken(t *testing.T) {
	token, err := generateToken()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}

	other, _ := generateToken()
	if token == other {
		t.Fatalf("tokens must be unique")
	}
}

func TestSessionStore_KeyFormat(t *testing.T) {
	s := NewSessionStore(nil, time.Hour)
	if got := s.key("abc"); got != "session:abc" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestSessionStore_EmptyToken(t *testing.T) {
	// Both paths short-circuit before touching Redis, so a nil client is safe.
	s := NewSessionStore(nil, time.Hour)

	if _, err := s.Get(context.Background(), ""); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := s.Destroy(context.Background(), ""); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestNewSessionStore_DefaultTTL(t *testing.T) {
	s := NewSessionStore(nil, 0)
	if s.ttl != defaultSessionTTL {
		t.Fatalf("expected default ttl, got %v", s.ttl)
	}
}
