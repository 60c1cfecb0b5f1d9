package ports

import (
	"context"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// UserRepository defines persistence operations for coordinator accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ListBasic returns every user in the lightweight projection consumed by
	// the dashboard (no password hashes).
	ListBasic(ctx context.Context) ([]domain.User, error)
}
