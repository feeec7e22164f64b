package ports

import (
	"context"
	"time"

	"github.com/clientdesk/portal/internal/core/domain"
)

// AdminRepository persists back-office operator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// ClientRepository persists client accounts. The backing store must enforce
// email uniqueness atomically; Create reports a conflict as
// domain.ErrEmailExists.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)

	// Update persists username, email, isActive and updatedAt for an
	// existing record.
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// EmailTaken reports whether another client (excludeID excluded) already
	// owns the given email.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)

	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountLoginsBetween(ctx context.Context, from, to time.Time) (int64, error)
}
