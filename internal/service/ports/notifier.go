package ports

import (
	"context"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

// RegistrationNotifier delivers the proof-of-registration artifact.
// Implementations must not block the registration request on delivery.
type RegistrationNotifier interface {
	RegistrationCreated(ctx context.Context, reg *domain.Registration, event *domain.Event)
}
