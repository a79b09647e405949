package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/api/metrics"
	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

// ItemService implements use-case operations for checklist items.
type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

func (s *ItemService) ListAll(ctx context.Context) ([]domain.Item, error) {
	return s.repo.FindAll(ctx)
}

func (s *ItemService) ListByList(ctx context.Context, listID string) ([]domain.Item, error) {
	return s.repo.FindByList(ctx, listID)
}

func (s *ItemService) Create(ctx context.Context, listID, description string) (*domain.Item, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.ErrDescriptionRequired
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.NewString(),
		ListID:      listID,
		Description: description,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// No application-level existence check on the list: the foreign key is
	// the guard, and the repository reports a violation as ErrListNotFound.
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	metrics.ItemsCreatedTotal.Inc()
	s.logger.Info().Str("item_id", item.ID).Str("list_id", listID).Msg("item created")
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, input ports.UpdateItemInput) (*domain.Item, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if !input.Status.Valid() {
		return nil, domain.ErrInvalidItemStatus
	}

	updated, err := s.repo.Update(ctx, &domain.Item{
		ID:          input.ItemID,
		ListID:      input.ListID,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemStatusTotal.WithLabelValues(string(updated.Status)).Inc()
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, listID, itemID string) error {
	if err := s.repo.Delete(ctx, listID, itemID); err != nil {
		return err
	}
	s.logger.Info().Str("item_id", itemID).Str("list_id", listID).Msg("item deleted")
	return nil
}
