package ports

import (
	"context"

	"github.com/taskden/todo-api/internal/core/domain"
)

// ListService defines use-case operations for lists.
type ListService interface {
	ListAll(ctx context.Context) ([]domain.List, error)
	Get(ctx context.Context, id string) (*domain.List, error)
	Create(ctx context.Context, title string) (*domain.List, error)
	Update(ctx context.Context, id, title string) (*domain.List, error)
	Delete(ctx context.Context, id string) error
}

// UpdateItemInput carries a full item update. ListID and ItemID must both
// match an existing row.
type UpdateItemInput struct {
	ListID      string
	ItemID      string
	Description string
	Status      domain.ItemStatus
}

// ItemService defines use-case operations for checklist items.
type ItemService interface {
	ListAll(ctx context.Context) ([]domain.Item, error)
	ListByList(ctx context.Context, listID string) ([]domain.Item, error)
	Create(ctx context.Context, listID, description string) (*domain.Item, error)
	Update(ctx context.Context, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, listID, itemID string) error
}
