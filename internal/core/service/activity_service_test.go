package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

type stubActivityRepo struct {
	entries []domain.Activity
}

func (r *stubActivityRepo) Create(_ context.Context, entry *domain.Activity) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func TestActivityService_Process(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), ports.ActivityInput{
		ListID: "list-1", Username: "ana1", Action: domain.ActionListCreated, Detail: "Groceries",
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.ID == "" {
		t.Fatalf("expected generated id")
	}
	if entry.CreatedAt.IsZero() {
		t.Fatalf("expected timestamp")
	}
	if entry.Action != domain.ActionListCreated || entry.Username != "ana1" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestActivityService_Recent_DefaultLimit(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_ = svc.Process(context.Background(), ports.ActivityInput{ListID: "l", Action: domain.ActionItemCreated})
	}

	entries, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}
