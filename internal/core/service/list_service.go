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

// ListService implements use-case operations for lists.
type ListService struct {
	repo   ports.ListRepository
	logger zerolog.Logger
}

func NewListService(repo ports.ListRepository, logger zerolog.Logger) *ListService {
	return &ListService{repo: repo, logger: logger}
}

func (s *ListService) ListAll(ctx context.Context) ([]domain.List, error) {
	return s.repo.FindAll(ctx)
}

func (s *ListService) Get(ctx context.Context, id string) (*domain.List, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ListService) Create(ctx context.Context, title string) (*domain.List, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrTitleRequired
	}

	now := time.Now().UTC()
	list := &domain.List{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    domain.ListStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, list); err != nil {
		s.logger.Error().Err(err).Msg("failed to create list")
		return nil, err
	}

	metrics.ListsCreatedTotal.Inc()
	s.logger.Info().Str("list_id", list.ID).Msg("list created")
	return list, nil
}

func (s *ListService) Update(ctx context.Context, id, title string) (*domain.List, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrTitleRequired
	}
	return s.repo.UpdateTitle(ctx, id, title)
}

// Delete removes the list and all of its items. The repository performs both
// deletes in one transaction.
func (s *ListService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("list_id", id).Msg("list deleted")
	return nil
}
