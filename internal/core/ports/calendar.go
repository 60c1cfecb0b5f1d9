package ports

import (
	"context"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// CalendarEventRepository stores the mirrored copy of the shared calendar.
type CalendarEventRepository interface {
	ListRange(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error)
	// ReplaceRange swaps all mirrored events inside the range for the given set.
	ReplaceRange(ctx context.Context, r domain.DateRange, events []domain.CalendarEvent) error
}

// CalendarSource fetches events from the upstream calendar provider.
type CalendarSource interface {
	Fetch(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error)
}

// CalendarService serves mirrored calendar events to the dashboard.
type CalendarService interface {
	Events(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error)
}
