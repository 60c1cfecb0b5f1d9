package ports

import (
	"context"
	"time"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// FeatureRepository defines persistence operations for searchable features.
type FeatureRepository interface {
	ListAll(ctx context.Context) ([]domain.SearchableFeature, error)
	// UpdateEmbedding stores a freshly computed vector on one feature.
	UpdateEmbedding(ctx context.Context, id string, embedding []float64, at time.Time) error
}
