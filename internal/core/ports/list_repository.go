package ports

import (
	"context"

	"github.com/taskden/todo-api/internal/core/domain"
)

// ListRepository defines persistence for lists.
//
// Delete removes the list's items and the list row in a single transaction;
// a crash never leaves orphaned items behind.
type ListRepository interface {
	FindAll(ctx context.Context) ([]domain.List, error)
	FindByID(ctx context.Context, id string) (*domain.List, error)
	Create(ctx context.Context, list *domain.List) error
	UpdateTitle(ctx context.Context, id, title string) (*domain.List, error)
	Delete(ctx context.Context, id string) error
}

// ItemRepository defines persistence for checklist items.
//
// Update and Delete match on BOTH the item id and the list id; a correct item
// id paired with the wrong list id affects nothing and reports
// domain.ErrItemNotFound.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
	FindByList(ctx context.Context, listID string) ([]domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, listID, itemID string) error
}
