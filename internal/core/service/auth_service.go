package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/recruiteriq/auth-service/internal/core/domain"
	"github.com/recruiteriq/auth-service/internal/core/ports"
	"github.com/recruiteriq/auth-service/internal/pkg/password"
)

// AuthService implements registration, login and the admin bootstrap.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user. The role must belong to the closed role
// set, and the email must not already be taken — the single INSERT makes
// the check-and-create atomic under the store's unique index.
func (s *AuthService) Register(ctx context.Context, email, plain, role string) (*domain.User, error) {
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         parsed,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Login checks the credentials and issues a session token embedding the
// user's current role. An unknown email and a wrong password return the
// same failure so the response never reveals which part was wrong.
func (s *AuthService) Login(ctx context.Context, email, plain string) (string, *domain.User, error) {
	if email == "" || plain == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(plain, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// EnsureAdmin seeds the admin account at startup: a no-op when the email
// already exists, otherwise it registers an admin with the given
// credentials. It reports whether a new record was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, plain string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	if _, err := s.Register(ctx, email, plain, string(domain.RoleAdmin)); err != nil {
		// A concurrent boot may have won the insert race.
		if errors.Is(err, domain.ErrUserExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
