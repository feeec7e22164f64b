package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

type stubActivityService struct {
	appendFn   func(ctx context.Context, entry domain.Activity) error
	lastFilter ports.ActivityFilter
	lastLimit  int64
}

func (s *stubActivityService) Append(ctx context.Context, entry domain.Activity) error {
	if s.appendFn != nil {
		return s.appendFn(ctx, entry)
	}
	return nil
}

func (s *stubActivityService) List(_ context.Context, filter ports.ActivityFilter) ([]domain.Activity, error) {
	s.lastFilter = filter
	return []domain.Activity{}, nil
}

func (s *stubActivityService) Recent(_ context.Context, limit int64) ([]domain.Activity, error) {
	s.lastLimit = limit
	return []domain.Activity{}, nil
}

func TestActivityHandler_List_BuildsFilter(t *testing.T) {
	e := newTestEcho()
	stub := &stubActivityService{}
	handler := NewActivityHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/activities?userId=cli&startDate=2026-01-01&endDate=2026-02-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if stub.lastFilter.SubjectMatch != "cli" {
		t.Fatalf("expected substring filter, got %+v", stub.lastFilter)
	}
	if stub.lastFilter.SubjectID != "" {
		t.Fatalf("list must not set an exact id filter")
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if stub.lastFilter.Start == nil || !stub.lastFilter.Start.Equal(want) {
		t.Fatalf("start date not parsed: %+v", stub.lastFilter.Start)
	}
	if stub.lastFilter.End == nil {
		t.Fatalf("end date not parsed")
	}
}

func TestActivityHandler_List_InvalidDate(t *testing.T) {
	e := newTestEcho()
	handler := NewActivityHandler(&stubActivityService{})

	req := httptest.NewRequest(http.MethodGet, "/activities?startDate=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestActivityHandler_ClientActivities_ExactMatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubActivityService{}
	handler := NewActivityHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/clients/activities?clientId=c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ClientActivities(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastFilter.SubjectID != "c1" {
		t.Fatalf("expected exact id filter, got %+v", stub.lastFilter)
	}
}

func TestActivityHandler_Recent_LimitsToFive(t *testing.T) {
	e := newTestEcho()
	stub := &stubActivityService{}
	handler := NewActivityHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/clients/recent-activities", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastLimit != 5 {
		t.Fatalf("expected limit 5, got %d", stub.lastLimit)
	}
}

func TestParseDate_AcceptsRFC3339(t *testing.T) {
	got, err := parseDate("2026-03-04T12:30:00Z")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := time.Date(2026, 3, 4, 12, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
