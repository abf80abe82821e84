package ports

import (
	"context"

	"github.com/recruiteriq/auth-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence. The store
// enforces email uniqueness; Create surfaces a violation as
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
