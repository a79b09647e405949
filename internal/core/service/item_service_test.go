package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

type stubItemRepo struct {
	items      map[string]*domain.Item
	knownLists map[string]bool
}

func newStubItemRepo(listIDs ...string) *stubItemRepo {
	r := &stubItemRepo{items: make(map[string]*domain.Item), knownLists: make(map[string]bool)}
	for _, id := range listIDs {
		r.knownLists[id] = true
	}
	return r
}

func (r *stubItemRepo) FindAll(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *stubItemRepo) FindByList(_ context.Context, listID string) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range r.items {
		if it.ListID == listID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) error {
	if !r.knownLists[item.ListID] {
		return domain.ErrListNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	existing, ok := r.items[item.ID]
	if !ok || existing.ListID != item.ListID {
		return nil, domain.ErrItemNotFound
	}
	existing.Description = item.Description
	existing.Status = item.Status
	clone := *existing
	return &clone, nil
}

func (r *stubItemRepo) Delete(_ context.Context, listID, itemID string) error {
	existing, ok := r.items[itemID]
	if !ok || existing.ListID != listID {
		return domain.ErrItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

func TestItemService_Create_Success(t *testing.T) {
	repo := newStubItemRepo("list-1")
	svc := NewItemService(repo, zerolog.Nop())

	item, err := svc.Create(context.Background(), "list-1", "Milk")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %s", item.Status)
	}
	if item.ListID != "list-1" {
		t.Fatalf("expected list-1, got %s", item.ListID)
	}
}

func TestItemService_Create_BlankDescription(t *testing.T) {
	svc := NewItemService(newStubItemRepo("list-1"), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "list-1", "   "); err != domain.ErrDescriptionRequired {
		t.Fatalf("expected ErrDescriptionRequired, got %v", err)
	}
}

func TestItemService_Create_UnknownList(t *testing.T) {
	svc := NewItemService(newStubItemRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "ghost", "Milk"); err != domain.ErrListNotFound {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestItemService_Update_StatusToggle(t *testing.T) {
	repo := newStubItemRepo("list-1")
	svc := NewItemService(repo, zerolog.Nop())

	item, _ := svc.Create(context.Background(), "list-1", "Milk")

	updated, err := svc.Update(context.Background(), ports.UpdateItemInput{
		ListID: "list-1", ItemID: item.ID, Description: "Milk", Status: domain.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
}

func TestItemService_Update_InvalidStatus(t *testing.T) {
	svc := NewItemService(newStubItemRepo("list-1"), zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdateItemInput{
		ListID: "list-1", ItemID: "item-1", Description: "Milk", Status: "done",
	})
	if err != domain.ErrInvalidItemStatus {
		t.Fatalf("expected ErrInvalidItemStatus, got %v", err)
	}
}

func TestItemService_Update_WrongList(t *testing.T) {
	repo := newStubItemRepo("list-1", "list-2")
	svc := NewItemService(repo, zerolog.Nop())

	item, _ := svc.Create(context.Background(), "list-1", "Milk")

	// Correct item id under the wrong list must not touch the row.
	_, err := svc.Update(context.Background(), ports.UpdateItemInput{
		ListID: "list-2", ItemID: item.ID, Description: "Tampered", Status: domain.StatusCompleted,
	})
	if err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if stored := repo.items[item.ID]; stored.Description != "Milk" || stored.Status != domain.StatusPending {
		t.Fatalf("item changed despite wrong list: %+v", stored)
	}
}

func TestItemService_Delete_WrongList(t *testing.T) {
	repo := newStubItemRepo("list-1", "list-2")
	svc := NewItemService(repo, zerolog.Nop())

	item, _ := svc.Create(context.Background(), "list-1", "Milk")

	if err := svc.Delete(context.Background(), "list-2", item.ID); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, ok := repo.items[item.ID]; !ok {
		t.Fatalf("item deleted despite wrong list")
	}

	if err := svc.Delete(context.Background(), "list-1", item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
