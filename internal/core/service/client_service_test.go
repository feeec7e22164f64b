package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientdesk/portal/internal/core/domain"
)

type fakeStatsCache struct {
	values map[string]int64
	gets   int
	sets   int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{values: make(map[string]int64)}
}

func (c *fakeStatsCache) GetCount(_ context.Context, key string) (int64, bool, error) {
	c.gets++
	n, ok := c.values[key]
	return n, ok, nil
}

func (c *fakeStatsCache) SetCount(_ context.Context, key string, value int64) error {
	c.sets++
	c.values[key] = value
	return nil
}

func seedClient(t *testing.T, repo *stubClientRepo, username, email string, active bool) *domain.Client {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.Client{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return created
}

func TestClientService_Create_HashesPassword(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, zerolog.Nop())

	client, err := svc.Create(context.Background(), "bob", "B@X.com", "secret1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if client.Email != "b@x.com" {
		t.Fatalf("expected normalized email, got %q", client.Email)
	}
	if client.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestClientService_Create_MissingFields(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "bob", "", "secret1"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestClientService_Update_EmailInUse(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, zerolog.Nop())

	seedClient(t, repo, "alice", "a@x.com", true)
	bob := seedClient(t, repo, "bob", "b@x.com", true)

	if _, err := svc.Update(context.Background(), bob.ID, "bob", "a@x.com"); !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestClientService_Update_SameEmailAllowed(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, zerolog.Nop())

	bob := seedClient(t, repo, "bob", "b@x.com", true)

	updated, err := svc.Update(context.Background(), bob.ID, "robert", "b@x.com")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "robert" {
		t.Fatalf("expected username change, got %q", updated.Username)
	}
	if updated.Role != domain.RoleClient {
		t.Fatalf("role must not change on update")
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", "bob", "b@x.com"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_ToggleStatus_DoubleToggleRestores(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, zerolog.Nop())

	bob := seedClient(t, repo, "bob", "b@x.com", true)

	once, err := svc.ToggleStatus(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if once.IsActive {
		t.Fatalf("expected inactive after first toggle")
	}

	twice, err := svc.ToggleStatus(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if !twice.IsActive {
		t.Fatalf("expected active again after second toggle")
	}
}

func TestClientService_Counts(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, zerolog.Nop())

	seedClient(t, repo, "a", "a@x.com", true)
	seedClient(t, repo, "b", "b@x.com", true)
	c := seedClient(t, repo, "c", "c@x.com", true)

	if _, err := svc.ToggleStatus(context.Background(), c.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	total, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 clients, got %d", total)
	}

	active, err := svc.ActiveCount(context.Background())
	if err != nil {
		t.Fatalf("active count failed: %v", err)
	}
	if active != 2 {
		t.Fatalf("expected 2 active clients, got %d", active)
	}
}

func TestClientService_TodayLogins(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, zerolog.Nop())

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)

	a := seedClient(t, repo, "a", "a@x.com", true)
	b := seedClient(t, repo, "b", "b@x.com", true)
	seedClient(t, repo, "c", "c@x.com", true)

	if err := repo.UpdateLastLogin(context.Background(), a.ID, now); err != nil {
		t.Fatalf("set last login: %v", err)
	}
	if err := repo.UpdateLastLogin(context.Background(), b.ID, yesterday); err != nil {
		t.Fatalf("set last login: %v", err)
	}

	n, err := svc.TodayLogins(context.Background())
	if err != nil {
		t.Fatalf("today logins failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 login today, got %d", n)
	}
}

func TestClientService_CountUsesCache(t *testing.T) {
	repo := newStubClientRepo()
	cache := newFakeStatsCache()
	svc := NewClientService(repo, cache, zerolog.Nop())

	seedClient(t, repo, "a", "a@x.com", true)

	n, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 || cache.sets != 1 {
		t.Fatalf("expected miss then write, got count=%d sets=%d", n, cache.sets)
	}

	// second read is served from the cache even though the repo changed
	seedClient(t, repo, "b", "b@x.com", true)
	n, err = svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected cached count 1, got %d", n)
	}
	if cache.sets != 1 {
		t.Fatalf("expected no second cache write, got %d", cache.sets)
	}
}
