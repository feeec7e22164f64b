package ports

import (
	"context"

	"github.com/clientdesk/portal/internal/core/domain"
)

// AuthService handles signup and login for both account kinds. Successful
// calls return a signed bearer token alongside the stored record.
type AuthService interface {
	SignupAdmin(ctx context.Context, username, email, password string) (string, *domain.Admin, error)
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error)
	SignupClient(ctx context.Context, username, email, password string) (string, *domain.Client, error)
	LoginClient(ctx context.Context, email, password string) (string, *domain.Client, error)
}
