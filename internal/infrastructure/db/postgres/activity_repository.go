package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskden/todo-api/internal/core/domain"
)

// ActivityRepository persists activity entries in the activity_log table.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, entry *domain.Activity) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	var entries []domain.Activity
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return entries, nil
}
