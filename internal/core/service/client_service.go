package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

// StatsCache abstracts the short-TTL counter cache (Redis) consulted by the
// dashboard count endpoints.
type StatsCache interface {
	GetCount(ctx context.Context, key string) (int64, bool, error)
	SetCount(ctx context.Context, key string, value int64) error
}

// Cache keys for the dashboard counters.
const (
	statTotalClients  = "clients:total"
	statActiveClients = "clients:active"
	statTodayLogins   = "clients:today_logins"
)

type clientService struct {
	repo  ports.ClientRepository
	stats StatsCache
	log   zerolog.Logger
}

// NewClientService returns the admin-facing client management service.
// stats may be nil, in which case counts always hit the repository.
func NewClientService(repo ports.ClientRepository, stats StatsCache, log zerolog.Logger) ports.ClientService {
	return &clientService{repo: repo, stats: stats, log: log}
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.FindAll(ctx)
}

// Create registers a client on an admin's behalf. The password is hashed the
// same way as on self-signup.
func (s *clientService) Create(ctx context.Context, username, email, password string) (*domain.Client, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Username:     strings.TrimSpace(username),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("email", created.Email).Msg("client created by admin")
	return created, nil
}

// Update changes username and email. Role and password are not reachable
// from this path.
func (s *clientService) Update(ctx context.Context, id, username, email string) (*domain.Client, error) {
	if username == "" || email == "" {
		return nil, domain.ErrMissingFields
	}

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	taken, err := s.repo.EmailTaken(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailInUse
	}

	client.Username = strings.TrimSpace(username)
	client.Email = email
	client.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, client)
}

func (s *clientService) ToggleStatus(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.IsActive = !client.IsActive
	client.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", id).Bool("is_active", updated.IsActive).Msg("client status toggled")
	return updated, nil
}

func (s *clientService) Count(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, statTotalClients, func(ctx context.Context) (int64, error) {
		return s.repo.Count(ctx)
	})
}

func (s *clientService) ActiveCount(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, statActiveClients, func(ctx context.Context) (int64, error) {
		return s.repo.CountActive(ctx)
	})
}

// TodayLogins counts clients whose last login falls within the current UTC day.
func (s *clientService) TodayLogins(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, statTodayLogins, func(ctx context.Context) (int64, error) {
		now := time.Now().UTC()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return s.repo.CountLoginsBetween(ctx, start, start.AddDate(0, 0, 1))
	})
}

// cachedCount consults the stats cache first and falls back to the counter
// function on a miss. Cache failures are logged and bypassed.
func (s *clientService) cachedCount(ctx context.Context, key string, count func(context.Context) (int64, error)) (int64, error) {
	if s.stats != nil {
		if n, ok, err := s.stats.GetCount(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		} else if ok {
			return n, nil
		}
	}

	n, err := count(ctx)
	if err != nil {
		return 0, err
	}

	if s.stats != nil {
		if err := s.stats.SetCount(ctx, key, n); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
		}
	}
	return n, nil
}
