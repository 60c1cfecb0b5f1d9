package handler

import (
	"time"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dateLayout is the wire format for query-string dates. End dates are
// inclusive on the wire and widened to a half-open range internally.
const dateLayout = "2006-01-02"

type createSlotRequest struct {
	UserID   string    `json:"user_id"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
	Status   string    `json:"status" validate:"required,oneof=available unavailable"`
	Note     string    `json:"note" validate:"max=500"`
}

type listSlotsResponse struct {
	Range domain.DateRange          `json:"range"`
	Slots []domain.AvailabilitySlot `json:"slots"`
}

// summaryResponse mirrors ports.SummaryResult; it exists so the JSON contract
// is owned by the transport layer rather than the service.
type summaryResponse struct {
	Range       domain.DateRange          `json:"range"`
	Users       []domain.UserAvailability `json:"users"`
	Counts      ports.SummaryCounts       `json:"counts"`
	OrphanCount int                       `json:"orphan_count"`
}
