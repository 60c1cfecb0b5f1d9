package ports

import (
	"context"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
