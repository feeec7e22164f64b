package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the activity log service.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Append persists a single entry. Entries are immutable once written.
func (s *activityService) Append(ctx context.Context, entry domain.Activity) error {
	if entry.SubjectID == "" || entry.Action == "" {
		return domain.ErrMissingFields
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Append(ctx, &entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (s *activityService) List(ctx context.Context, filter ports.ActivityFilter) ([]domain.Activity, error) {
	return s.repo.Find(ctx, filter)
}

func (s *activityService) Recent(ctx context.Context, limit int64) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.Find(ctx, ports.ActivityFilter{Limit: limit})
}
