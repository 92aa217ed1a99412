package ports

import (
	"context"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type UserRepo interface {
	// Create inserts the user together with its profile in one transaction.
	Create(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
