package ports

import (
	"context"

	"github.com/taskden/todo-api/internal/core/domain"
)

// RegisterInput carries the four registration fields. Confirm must equal
// Password; the check belongs to the service, not the transport.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Confirm  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (*domain.Account, error)
}
