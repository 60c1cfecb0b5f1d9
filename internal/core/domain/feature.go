package domain

import (
	"math"
	"time"
)

// SearchableFeature is a dashboard feature indexed by the smart search. The
// embedding vector is optional; regeneration backfills missing ones.
type SearchableFeature struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Embedding   []float64 `json:"embedding,omitempty" bson:"embedding,omitempty"`
	EmbeddedAt  time.Time `json:"embedded_at,omitempty" bson:"embedded_at,omitempty"`
}

// HasEmbedding reports whether the feature carries a precomputed vector.
func (f SearchableFeature) HasEmbedding() bool {
	return len(f.Embedding) > 0
}

// CoverageStatus summarises how much of the search index has embeddings.
type CoverageStatus struct {
	Total          int `json:"total"`
	WithEmbeddings int `json:"with_embeddings"`
	Percentage     int `json:"percentage"`
}

// ComputeCoverage counts embedded features and derives the percentage,
// rounded half up. An empty feature set yields 0%, never a division error.
func ComputeCoverage(features []SearchableFeature) CoverageStatus {
	status := CoverageStatus{Total: len(features)}
	for _, f := range features {
		if f.HasEmbedding() {
			status.WithEmbeddings++
		}
	}
	if status.Total > 0 {
		status.Percentage = int(math.Round(float64(status.WithEmbeddings) / float64(status.Total) * 100))
	}
	return status
}
