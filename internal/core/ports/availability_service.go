package ports

import (
	"context"
	"time"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// SummaryInput carries all query parameters for the availability summary.
// When Preset is non-empty it takes precedence over the explicit range.
type SummaryInput struct {
	Range  domain.DateRange
	Preset domain.RangePreset
	Search string
}

// SummaryCounts breaks users down by availability bucket for the range.
type SummaryCounts struct {
	TotalUsers  int `json:"total_users"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
	NoData      int `json:"no_data"`
}

// SummaryResult is the aggregated availability view for one date range.
// OrphanCount reports slots whose user_id matched no known user; they are
// excluded from the per-user grouping but surfaced so data-integrity problems
// are visible.
type SummaryResult struct {
	Range       domain.DateRange          `json:"range"`
	Users       []domain.UserAvailability `json:"users"`
	Counts      SummaryCounts             `json:"counts"`
	OrphanCount int                       `json:"orphan_count"`
}

// CreateSlotInput carries the data needed to record a new availability slot.
type CreateSlotInput struct {
	UserID   string
	StartsAt time.Time
	EndsAt   time.Time
	Status   string
	Note     string
}

// AvailabilityService defines use-case operations for the availability views.
type AvailabilityService interface {
	Summary(ctx context.Context, input SummaryInput) (*SummaryResult, error)
	ListSlots(ctx context.Context, r domain.DateRange) ([]domain.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, input CreateSlotInput) (*domain.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, id string) error
}
