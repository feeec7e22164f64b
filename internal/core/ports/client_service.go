package ports

import (
	"context"

	"github.com/clientdesk/portal/internal/core/domain"
)

// ClientService exposes the admin-facing client management operations.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, username, email, password string) (*domain.Client, error)
	Update(ctx context.Context, id, username, email string) (*domain.Client, error)
	ToggleStatus(ctx context.Context, id string) (*domain.Client, error)

	Count(ctx context.Context) (int64, error)
	ActiveCount(ctx context.Context) (int64, error)
	TodayLogins(ctx context.Context) (int64, error)
}
