package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/core/domain"
)

type stubClientService struct {
	listFn   func(ctx context.Context) ([]domain.Client, error)
	createFn func(ctx context.Context, username, email, password string) (*domain.Client, error)
	updateFn func(ctx context.Context, id, username, email string) (*domain.Client, error)
	toggleFn func(ctx context.Context, id string) (*domain.Client, error)
	countFn  func(ctx context.Context) (int64, error)
	activeFn func(ctx context.Context) (int64, error)
	loginsFn func(ctx context.Context) (int64, error)
}

func (s *stubClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.listFn(ctx)
}

func (s *stubClientService) Create(ctx context.Context, username, email, password string) (*domain.Client, error) {
	return s.createFn(ctx, username, email, password)
}

func (s *stubClientService) Update(ctx context.Context, id, username, email string) (*domain.Client, error) {
	return s.updateFn(ctx, id, username, email)
}

func (s *stubClientService) ToggleStatus(ctx context.Context, id string) (*domain.Client, error) {
	return s.toggleFn(ctx, id)
}

func (s *stubClientService) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func (s *stubClientService) ActiveCount(ctx context.Context) (int64, error) {
	return s.activeFn(ctx)
}

func (s *stubClientService) TodayLogins(ctx context.Context) (int64, error) {
	return s.loginsFn(ctx)
}

func TestClientHandler_List_OmitsPasswordHash(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{
		listFn: func(context.Context) ([]domain.Client, error) {
			return []domain.Client{{
				ID:           "c1",
				Username:     "bob",
				Email:        "b@x.com",
				PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
				Role:         domain.RoleClient,
				IsActive:     true,
			}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var clients []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &clients); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected one client, got %d", len(clients))
	}
	for _, key := range []string{"password", "passwordHash", "PasswordHash"} {
		if _, found := clients[0][key]; found {
			t.Fatalf("hash leaked under key %q", key)
		}
	}
}

func TestClientHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{
		createFn: func(_ context.Context, username, email, password string) (*domain.Client, error) {
			return &domain.Client{ID: "c1", Username: username, Email: email, Role: domain.RoleClient, IsActive: true}, nil
		},
	})

	req := jsonRequest(http.MethodPost, "/clients", `{"username":"bob","email":"b@x.com","password":"secret1"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestClientHandler_Create_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{
		createFn: func(context.Context, string, string, string) (*domain.Client, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	req := jsonRequest(http.MethodPost, "/clients", `{"username":"bob","email":"b@x.com"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestClientHandler_Update_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{
		updateFn: func(context.Context, string, string, string) (*domain.Client, error) {
			return nil, domain.ErrClientNotFound
		},
	})

	req := jsonRequest(http.MethodPut, "/clients/missing", `{"username":"bob","email":"b@x.com"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientHandler_ToggleStatus(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{
		toggleFn: func(_ context.Context, id string) (*domain.Client, error) {
			if id != "c1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Client{ID: id, Username: "bob", IsActive: false, Role: domain.RoleClient}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/clients/c1/toggle-status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.ToggleStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isActive"] != false {
		t.Fatalf("expected isActive false, got %v", resp["isActive"])
	}
}

func TestClientHandler_Counts(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{
		countFn:  func(context.Context) (int64, error) { return 3, nil },
		activeFn: func(context.Context) (int64, error) { return 2, nil },
		loginsFn: func(context.Context) (int64, error) { return 1, nil },
	})

	cases := []struct {
		name string
		call func(echo.Context) error
		want string
	}{
		{"count", handler.Count, `{"count":3}`},
		{"active", handler.Active, `{"count":2}`},
		{"today-logins", handler.TodayLogins, `{"count":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/clients/"+tc.name, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := tc.call(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			got := rec.Body.String()
			if got != tc.want+"\n" && got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
