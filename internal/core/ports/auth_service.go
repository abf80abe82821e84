package ports

import (
	"context"

	"github.com/recruiteriq/auth-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}
