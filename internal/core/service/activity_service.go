package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskden/todo-api/internal/api/metrics"
	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

const defaultRecentLimit = 50

// ActivityService persists activity entries handed over by the dispatcher and
// serves the recent-activity read surface.
type ActivityService struct {
	repo   ports.ActivityRepository
	logger zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger}
}

func (s *ActivityService) Process(ctx context.Context, input ports.ActivityInput) error {
	start := time.Now()

	entry := &domain.Activity{
		ID:        uuid.NewString(),
		ListID:    input.ListID,
		ItemID:    input.ItemID,
		Username:  input.Username,
		Action:    input.Action,
		Detail:    input.Detail,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return err
	}

	metrics.ActivityProcessedTotal.WithLabelValues(input.Action).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(input.Action).Observe(time.Since(start).Seconds())
	return nil
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}
