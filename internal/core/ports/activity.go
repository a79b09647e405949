package ports

import (
	"context"

	"github.com/taskden/todo-api/internal/core/domain"
)

// ActivityInput is a single mutation observed at the API layer, destined for
// the activity log.
type ActivityInput struct {
	ListID   string
	ItemID   string
	Username string
	Action   string
	Detail   string
}

// ActivityRecorder accepts activity inputs without blocking the caller.
// Implementations may drop inputs under pressure.
type ActivityRecorder interface {
	Record(input ActivityInput)
}

// ActivityService persists and reads back activity entries.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ActivityRepository defines persistence for the activity log.
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.Activity) error
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}
