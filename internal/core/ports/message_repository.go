package ports

import (
	"context"

	"github.com/clientdesk/portal/internal/core/domain"
)

// MessageRepository persists client messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)

	// FindAll returns every message, newest first.
	FindAll(ctx context.Context) ([]domain.Message, error)
}
