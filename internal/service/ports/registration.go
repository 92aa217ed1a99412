package ports

import (
	"context"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type RegistrationRepo interface {
	// Create enforces the capacity ceiling and the duplicate-registration
	// constraints atomically with respect to concurrent calls.
	Create(ctx context.Context, r *domain.Registration) error
	DeleteByEventAndUser(ctx context.Context, eventID, userID string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
}
