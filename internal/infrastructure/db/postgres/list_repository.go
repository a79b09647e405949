package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/taskden/todo-api/internal/core/domain"
)

// ListRepository persists lists in the list table.
type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) FindAll(ctx context.Context) ([]domain.List, error) {
	var lists []domain.List
	if err := r.db.WithContext(ctx).Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("find lists: %w", err)
	}
	return lists, nil
}

func (r *ListRepository) FindByID(ctx context.Context, id string) (*domain.List, error) {
	var list domain.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("find list: %w", err)
	}
	return &list, nil
}

func (r *ListRepository) Create(ctx context.Context, list *domain.List) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return fmt.Errorf("insert list: %w", err)
	}
	return nil
}

func (r *ListRepository) UpdateTitle(ctx context.Context, id, title string) (*domain.List, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.List{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, fmt.Errorf("update list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrListNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes the list's items and the list row as one transaction; a
// failure at either statement rolls both back.
func (r *ListRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&domain.Item{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&domain.List{})
		if res.Error != nil {
			return fmt.Errorf("delete list: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrListNotFound
		}
		return nil
	})
}
