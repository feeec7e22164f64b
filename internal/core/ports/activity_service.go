package ports

import (
	"context"

	"github.com/clientdesk/portal/internal/core/domain"
)

// ActivityRecorder accepts entries for asynchronous persistence. Record never
// blocks the caller beyond queue capacity.
type ActivityRecorder interface {
	Record(entry domain.Activity)
}

// ActivityService writes and reads the activity log.
type ActivityService interface {
	// Append persists a single entry synchronously.
	Append(ctx context.Context, entry domain.Activity) error

	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Recent(ctx context.Context, limit int64) ([]domain.Activity, error)
}
