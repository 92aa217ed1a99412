package ports

import (
	"context"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}
