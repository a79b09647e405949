package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/taskden/todo-api/internal/core/domain"
)

// ItemRepository persists checklist items in the items table.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) FindByList(ctx context.Context, listID string) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.WithContext(ctx).Where("list_id = ?", listID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find items by list: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		// The foreign key is the only existence check on the target list.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrListNotFound
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update matches on BOTH the item id and the list id; a correct item id under
// the wrong list updates nothing and reports ErrItemNotFound.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ? AND list_id = ?", item.ID, item.ListID).
		Updates(map[string]any{
			"description": item.Description,
			"status":      item.Status,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrItemNotFound
	}

	var updated domain.Item
	if err := r.db.WithContext(ctx).Where("id = ? AND list_id = ?", item.ID, item.ListID).First(&updated).Error; err != nil {
		return nil, fmt.Errorf("reload item: %w", err)
	}
	return &updated, nil
}

func (r *ItemRepository) Delete(ctx context.Context, listID, itemID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND list_id = ?", itemID, listID).Delete(&domain.Item{})
	if res.Error != nil {
		return fmt.Errorf("delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
