package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// UserService implements account CRUD on top of the user repository.
// Plaintext passwords are hashed here and never stored or logged.
type UserService struct {
	repo      ports.UserRepository
	passwords *PasswordHasher
}

func NewUserService(repo ports.UserRepository, passwords *PasswordHasher) *UserService {
	return &UserService{repo: repo, passwords: passwords}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create registers a new account. Role defaults to USER when empty; an
// unknown role or missing credentials fail with ErrInvalidInput, a duplicate
// username with ErrUserExists.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be ADMIN or USER", domain.ErrInvalidInput)
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
	})
}

// Update applies a partial update. A new password is re-hashed; a new role
// is validated against the known set.
func (s *UserService) Update(ctx context.Context, id int, in ports.UpdateUserInput) (*domain.User, error) {
	upd := ports.UserUpdate{Username: in.Username, Role: in.Role}

	if in.Role != nil && !domain.ValidRole(*in.Role) {
		return nil, fmt.Errorf("%w: role must be ADMIN or USER", domain.ErrInvalidInput)
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", domain.ErrInvalidInput)
		}
		hash, err := s.passwords.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *UserService) Delete(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.Delete(ctx, id)
}

// EnsureDefaultUsers seeds the demo accounts (admin/admin123, user1/user123)
// when they are absent. Intended for development environments only; the call
// is idempotent.
func (s *UserService) EnsureDefaultUsers(ctx context.Context, log zerolog.Logger) error {
	defaults := []ports.CreateUserInput{
		{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{Username: "user1", Password: "user123", Role: domain.RoleUser},
	}
	for _, in := range defaults {
		if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		if _, err := s.Create(ctx, in); err != nil {
			// Concurrent seeding from another replica is not a failure.
			if errors.Is(err, domain.ErrUserExists) {
				continue
			}
			return err
		}
		log.Info().Str("username", in.Username).Str("role", in.Role).Msg("seeded default user")
	}
	return nil
}
