package ports

import (
	"context"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.EventStats, error)
	ListRegisteredBy(ctx context.Context, userID string) ([]*domain.Event, error)
}
