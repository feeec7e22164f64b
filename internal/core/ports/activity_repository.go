package ports

import (
	"context"
	"time"

	"github.com/clientdesk/portal/internal/core/domain"
)

// ActivityFilter narrows an activity log read. Zero values mean "no filter".
type ActivityFilter struct {
	// SubjectID matches a subject id exactly.
	SubjectID string
	// SubjectMatch matches subject ids by case-insensitive substring.
	SubjectMatch string
	Start        *time.Time
	End          *time.Time
	// Limit caps the number of returned entries; 0 means unlimited.
	Limit int64
}

// ActivityRepository persists the append-only activity log.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.Activity) error

	// Find returns matching entries, newest first.
	Find(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
}
