package service

import (
	"context"
	"errors"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// AuthService verifies credentials against the user store and issues tokens.
type AuthService struct {
	repo      ports.UserRepository
	passwords *PasswordHasher
	tokens    *TokenService
}

func NewAuthService(repo ports.UserRepository, passwords *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, passwords: passwords, tokens: tokens}
}

// Login checks the credentials and returns a signed session token with the
// authenticated user. An unknown username and a wrong password are
// indistinguishable to the caller: both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
