package ports

import (
	"context"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// JobStore persists the shared regeneration job snapshot so every API
// instance reports the same progress.
type JobStore interface {
	// Get returns the current snapshot, or an idle job when none was stored.
	Get(ctx context.Context) (domain.RegenerationJob, error)
	Set(ctx context.Context, job domain.RegenerationJob) error
}
