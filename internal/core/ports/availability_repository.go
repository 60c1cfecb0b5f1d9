package ports

import (
	"context"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// AvailabilityRepository defines persistence operations for availability slots.
type AvailabilityRepository interface {
	// ListRange returns all slots overlapping the half-open range [r.Start, r.End).
	ListRange(ctx context.Context, r domain.DateRange) ([]domain.AvailabilitySlot, error)
	Insert(ctx context.Context, slot *domain.AvailabilitySlot) error
	Delete(ctx context.Context, id string) error
}
