package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// UserUpdate carries a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// UserRepository defines the persistence contract for user accounts.
// Implementations return domain.ErrUserNotFound for absent rows and
// domain.ErrUserExists on username collisions.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int) (*domain.User, error)
}
