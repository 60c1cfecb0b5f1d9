package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

type stubCalendarService struct {
	eventsFn func(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error)
}

func (s *stubCalendarService) Events(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error) {
	return s.eventsFn(ctx, r)
}

func TestCalendarHandler_Events(t *testing.T) {
	e := newTestEcho()
	stub := &stubCalendarService{
		eventsFn: func(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error) {
			wantStart := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
			if !r.Start.Equal(wantStart) {
				t.Fatalf("unexpected range start: %v", r.Start)
			}
			return []domain.CalendarEvent{{ID: "e1", Title: "Food distribution"}}, nil
		},
	}
	handler := NewCalendarHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/calendar/events?start_date=2026-03-16&end_date=2026-03-22", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Events(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	events, ok := resp["events"].([]any)
	if !ok || len(events) != 1 {
		t.Fatalf("expected one event, got %v", resp["events"])
	}
}

func TestCalendarHandler_Events_MissingDates(t *testing.T) {
	e := newTestEcho()
	stub := &stubCalendarService{
		eventsFn: func(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCalendarHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/calendar/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Events(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}
