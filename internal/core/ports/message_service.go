package ports

import (
	"context"

	"github.com/clientdesk/portal/internal/core/domain"
)

// MessageService handles client-to-admin messaging.
type MessageService interface {
	// Send stores a new message. Identity fields come from the caller's
	// verified token, never from the request body.
	Send(ctx context.Context, clientID, username, content string) (*domain.Message, error)

	List(ctx context.Context) ([]domain.Message, error)
}
