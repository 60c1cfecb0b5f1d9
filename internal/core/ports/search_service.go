package ports

import (
	"context"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// SearchStatusResult combines index coverage with the regeneration job state.
// Progress is the capped display value, not the raw processed ratio.
type SearchStatusResult struct {
	Coverage domain.CoverageStatus  `json:"coverage"`
	Job      domain.RegenerationJob `json:"job"`
	Progress int                    `json:"progress"`
}

// SearchService defines use-case operations for the smart-search admin view.
type SearchService interface {
	Features(ctx context.Context) ([]domain.SearchableFeature, error)
	Coverage(ctx context.Context) (domain.CoverageStatus, error)
	// Regenerate starts the embedding regeneration job. Returns
	// domain.ErrJobAlreadyRunning when one is in flight.
	Regenerate(ctx context.Context) error
	Status(ctx context.Context) (*SearchStatusResult, error)
}
